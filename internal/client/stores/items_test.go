package stores

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidirectory/adminctl/internal/client/api"
	"github.com/aidirectory/adminctl/internal/client/models"
	"github.com/aidirectory/adminctl/internal/logging"
)

// pagedBackend serves ListItems from an in-memory item list, so pagination
// math matches a real server.
type pagedBackend struct {
	items []models.Item
	limit int
	calls []int // pages requested, in order
}

func (b *pagedBackend) list(ctx context.Context, page, limit int) (*models.ItemPage, error) {
	b.calls = append(b.calls, page)
	total := len(b.items)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return &models.ItemPage{
		Items:      append([]models.Item(nil), b.items[start:end]...),
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

func makeItems(n int) []models.Item {
	items := make([]models.Item, n)
	for i := range items {
		items[i] = models.Item{ID: fmt.Sprintf("i%d", i+1), WebsiteName: fmt.Sprintf("site %d", i+1)}
	}
	return items
}

func TestItemFetch_ReplacesWholesale(t *testing.T) {
	backend := &pagedBackend{items: makeItems(3), limit: 10}
	s := NewItemStore(&fakeAPI{listItems: backend.list}, 10, logging.Discard())

	require.NoError(t, s.Fetch(context.Background(), 1))
	assert.Equal(t, backend.items, s.Items())
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 1, s.TotalPages())
	assert.Equal(t, 3, s.Total())
	assert.False(t, s.Loading())
	assert.Empty(t, s.Err())
}

func TestItemFetch_FailureKeepsPriorItems(t *testing.T) {
	backend := &pagedBackend{items: makeItems(2), limit: 10}
	fake := &fakeAPI{listItems: backend.list}
	s := NewItemStore(fake, 10, logging.Discard())
	ctx := context.Background()

	require.NoError(t, s.Fetch(ctx, 1))
	before := s.Items()

	fake.listItems = func(ctx context.Context, page, limit int) (*models.ItemPage, error) {
		return nil, &api.Error{Status: 500, Body: "boom"}
	}
	err := s.Fetch(ctx, 2)
	require.Error(t, err)
	assert.Equal(t, before, s.Items(), "stale-but-available: prior items survive a failed fetch")
	assert.Equal(t, "boom", s.Err())
	assert.False(t, s.Loading())
}

func TestItemCreate_RefetchesCurrentPage(t *testing.T) {
	backend := &pagedBackend{items: makeItems(3), limit: 10}
	added := false
	fake := &fakeAPI{
		listItems: backend.list,
		addItem: func(ctx context.Context, p models.ItemPayload) (*models.Item, error) {
			added = true
			backend.items = append(backend.items, models.Item{ID: "i4", WebsiteName: p.WebsiteName})
			return &backend.items[len(backend.items)-1], nil
		},
	}
	s := NewItemStore(fake, 10, logging.Discard())
	ctx := context.Background()

	require.NoError(t, s.Fetch(ctx, 1))
	require.NoError(t, s.Create(ctx, models.ItemPayload{WebsiteName: "new site"}))

	assert.True(t, added)
	assert.Equal(t, []int{1, 1}, backend.calls)
	assert.Len(t, s.Items(), 4)
	assert.Equal(t, 4, s.Total())
}

func TestItemCreate_FailureLeavesListUnchanged(t *testing.T) {
	backend := &pagedBackend{items: makeItems(2), limit: 10}
	fake := &fakeAPI{
		listItems: backend.list,
		addItem: func(ctx context.Context, p models.ItemPayload) (*models.Item, error) {
			return nil, &api.Error{Status: 422, Message: "websitename is required"}
		},
	}
	s := NewItemStore(fake, 10, logging.Discard())
	ctx := context.Background()

	require.NoError(t, s.Fetch(ctx, 1))
	before := s.Items()

	err := s.Create(ctx, models.ItemPayload{})
	require.Error(t, err)
	assert.Equal(t, before, s.Items())
	assert.Equal(t, "websitename is required", s.Err())
	assert.False(t, s.Loading())
}

func TestItemUpdate_RefetchesSamePage(t *testing.T) {
	backend := &pagedBackend{items: makeItems(12), limit: 10}
	fake := &fakeAPI{
		listItems: backend.list,
		updateItem: func(ctx context.Context, id string, p models.ItemPayload) (*models.Item, error) {
			for i := range backend.items {
				if backend.items[i].ID == id {
					backend.items[i].WebsiteName = p.WebsiteName
					return &backend.items[i], nil
				}
			}
			return nil, &api.Error{Status: 404, Message: "item not found"}
		},
	}
	s := NewItemStore(fake, 10, logging.Discard())
	ctx := context.Background()

	require.NoError(t, s.Fetch(ctx, 2))
	require.NoError(t, s.Update(ctx, "i11", models.ItemPayload{WebsiteName: "renamed"}))

	assert.Equal(t, []int{2, 2}, backend.calls)
	assert.Equal(t, 2, s.Page())
	assert.Equal(t, "renamed", s.Items()[0].WebsiteName)
}

func TestItemDelete_PageUnderflow(t *testing.T) {
	// 11 items, limit 10: page 2 holds exactly one item
	backend := &pagedBackend{items: makeItems(11), limit: 10}
	fake := &fakeAPI{
		listItems: backend.list,
		deleteItem: func(ctx context.Context, id string) error {
			for i := range backend.items {
				if backend.items[i].ID == id {
					backend.items = append(backend.items[:i], backend.items[i+1:]...)
					return nil
				}
			}
			return &api.Error{Status: 404, Message: "item not found"}
		},
	}
	s := NewItemStore(fake, 10, logging.Discard())
	ctx := context.Background()

	require.NoError(t, s.Fetch(ctx, 2))
	require.Len(t, s.Items(), 1)
	require.Equal(t, 2, s.TotalPages())

	require.NoError(t, s.Delete(ctx, "i11"))
	assert.Equal(t, 1, s.Page(), "deleting the last row of page 2 navigates back to page 1")
	assert.Equal(t, 1, s.TotalPages())
	assert.Len(t, s.Items(), 10)
}

func TestItemDelete_NoUnderflowOnFullPage(t *testing.T) {
	backend := &pagedBackend{items: makeItems(15), limit: 10}
	fake := &fakeAPI{
		listItems: backend.list,
		deleteItem: func(ctx context.Context, id string) error {
			backend.items = backend.items[:len(backend.items)-1]
			return nil
		},
	}
	s := NewItemStore(fake, 10, logging.Discard())
	ctx := context.Background()

	require.NoError(t, s.Fetch(ctx, 2))
	require.Len(t, s.Items(), 5)

	require.NoError(t, s.Delete(ctx, "i15"))
	assert.Equal(t, 2, s.Page())
}

func TestItemStore_BusyGuard(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	fake := &fakeAPI{
		listItems: func(ctx context.Context, page, limit int) (*models.ItemPage, error) {
			close(started)
			<-release
			return &models.ItemPage{Page: page}, nil
		},
	}
	s := NewItemStore(fake, 10, logging.Discard())
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- s.Fetch(ctx, 1) }()
	<-started

	assert.True(t, s.Loading())
	assert.ErrorIs(t, s.Fetch(ctx, 1), ErrBusy)
	assert.ErrorIs(t, s.Delete(ctx, "i1"), ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, s.Loading())
}

func TestItemCreate_RoundTrip(t *testing.T) {
	// client-writable fields of the created item equal the payload after a
	// fresh fetch; server-assigned fields (id) are excluded
	backend := &pagedBackend{limit: 10}
	fake := &fakeAPI{
		listItems: backend.list,
		addItem: func(ctx context.Context, p models.ItemPayload) (*models.Item, error) {
			item := models.Item{
				ID:          "server-1",
				WebsiteName: p.WebsiteName,
				WebsiteURL:  p.WebsiteURL,
				Category:    p.Category,
				PricingType: p.PricingType,
				Tags:        models.SplitLabels(p.Tags),
				Features:    models.SplitLabels(p.Features),
				Rating:      p.Rating,
				SEO:         models.SEO{Slug: "server-derived"},
			}
			backend.items = append(backend.items, item)
			return &item, nil
		},
	}
	s := NewItemStore(fake, 10, logging.Discard())
	ctx := context.Background()

	payload := models.ItemPayload{
		WebsiteName: "Example",
		WebsiteURL:  "https://example.com",
		Category:    "productivity",
		PricingType: models.PricingPaid,
		Tags:        models.JoinLabels([]string{"chat", "writing"}),
		Features:    models.JoinLabels([]string{"api access", "export"}),
		Rating:      4,
	}
	require.NoError(t, s.Create(ctx, payload))
	require.NoError(t, s.Fetch(ctx, 1))

	require.Len(t, s.Items(), 1)
	got := s.Items()[0]
	assert.Equal(t, payload.WebsiteName, got.WebsiteName)
	assert.Equal(t, payload.WebsiteURL, got.WebsiteURL)
	assert.Equal(t, payload.Category, got.Category)
	assert.Equal(t, payload.PricingType, got.PricingType)
	assert.Equal(t, []string{"chat", "writing"}, got.Tags)
	assert.Equal(t, []string{"api access", "export"}, got.Features)
	assert.Equal(t, payload.Rating, got.Rating)
}

func TestItemFetch_ErrorClearedOnNextOperation(t *testing.T) {
	backend := &pagedBackend{items: makeItems(1), limit: 10}
	fake := &fakeAPI{
		listItems: func(ctx context.Context, page, limit int) (*models.ItemPage, error) {
			return nil, errors.New("transient")
		},
	}
	s := NewItemStore(fake, 10, logging.Discard())
	ctx := context.Background()

	require.Error(t, s.Fetch(ctx, 1))
	require.Equal(t, "transient", s.Err())

	fake.listItems = backend.list
	require.NoError(t, s.Fetch(ctx, 1))
	assert.Empty(t, s.Err())
}
