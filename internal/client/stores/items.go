package stores

import (
	"context"

	"github.com/aidirectory/adminctl/internal/client/api"
	"github.com/aidirectory/adminctl/internal/client/models"
	"github.com/aidirectory/adminctl/internal/logging"
)

// DefaultPageLimit is used when the configuration does not set one.
const DefaultPageLimit = 10

// ItemStore owns the paginated item collection. Mutations re-fetch the
// current page instead of patching the list locally: with pagination, a local
// append or removal would desynchronize page boundaries and totals from the
// server.
type ItemStore struct {
	opState
	api   api.Client
	limit int

	items      []models.Item
	page       int
	totalPages int
	totalItems int
}

func NewItemStore(c api.Client, limit int, log logging.Logger) *ItemStore {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	s := &ItemStore{api: c, limit: limit, page: 1}
	s.log = log
	return s
}

// Fetch replaces the collection with the requested page.
func (s *ItemStore) Fetch(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	if err := s.begin(); err != nil {
		return err
	}
	return s.refresh(ctx, "fetch items", page)
}

// Create posts the payload and re-fetches the current page.
func (s *ItemStore) Create(ctx context.Context, p models.ItemPayload) error {
	if err := s.begin(); err != nil {
		return err
	}
	if _, err := s.api.AddItem(ctx, p); err != nil {
		s.fail(ctx, "create item", err)
		return err
	}
	return s.refresh(ctx, "create item", s.Page())
}

// Update puts the payload for id and re-fetches the current page.
func (s *ItemStore) Update(ctx context.Context, id string, p models.ItemPayload) error {
	if err := s.begin(); err != nil {
		return err
	}
	if _, err := s.api.UpdateItem(ctx, id, p); err != nil {
		s.fail(ctx, "update item", err)
		return err
	}
	return s.refresh(ctx, "update item", s.Page())
}

// Delete removes the item and re-fetches. Deleting the only row of a page
// beyond the first would leave the view on an empty page, so the store steps
// back one page before re-fetching.
func (s *ItemStore) Delete(ctx context.Context, id string) error {
	if err := s.begin(); err != nil {
		return err
	}
	if err := s.api.DeleteItem(ctx, id); err != nil {
		s.fail(ctx, "delete item", err)
		return err
	}

	s.mu.Lock()
	page := s.page
	if page > 1 && len(s.items) == 1 {
		page--
	}
	s.mu.Unlock()

	return s.refresh(ctx, "delete item", page)
}

// refresh runs the page fetch that settles an already-begun operation.
func (s *ItemStore) refresh(ctx context.Context, op string, page int) error {
	res, err := s.api.ListItems(ctx, page, s.limit)
	if err != nil {
		s.fail(ctx, op, err)
		return err
	}
	s.finish(func() {
		s.items = res.Items
		s.page = res.Page
		s.totalPages = res.TotalPages
		s.totalItems = res.Total
	})
	return nil
}

// Items returns a copy of the current page's items in server order.
func (s *ItemStore) Items() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.Item, len(s.items))
	copy(items, s.items)
	return items
}

func (s *ItemStore) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

func (s *ItemStore) TotalPages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPages
}

func (s *ItemStore) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalItems
}

func (s *ItemStore) Limit() int {
	return s.limit
}
