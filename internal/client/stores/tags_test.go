package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidirectory/adminctl/internal/client/api"
	"github.com/aidirectory/adminctl/internal/client/models"
	"github.com/aidirectory/adminctl/internal/logging"
)

func tagFixture() []models.Tag {
	return []models.Tag{
		{ID: "t1", TagName: "chat", Description: "conversational tools"},
		{ID: "t2", TagName: "image", Description: "image generation"},
	}
}

func newTagStore(t *testing.T, fake *fakeAPI) *TagStore {
	t.Helper()
	if fake.listTags == nil {
		fake.listTags = func(ctx context.Context) ([]models.Tag, error) { return tagFixture(), nil }
	}
	s := NewTagStore(fake, logging.Discard())
	require.NoError(t, s.Fetch(context.Background()))
	return s
}

func TestTagCreate_AppendsCanonicalEntity(t *testing.T) {
	fake := &fakeAPI{addTag: func(ctx context.Context, p models.TagPayload) (*models.Tag, error) {
		return &models.Tag{ID: "t3", TagName: p.TagName, Description: p.Description}, nil
	}}
	s := newTagStore(t, fake)

	require.NoError(t, s.Create(context.Background(), models.TagPayload{TagName: "audio", Description: "speech"}))
	got := s.Tags()
	require.Len(t, got, 3)
	assert.Equal(t, models.Tag{ID: "t3", TagName: "audio", Description: "speech"}, got[2])
}

func TestTagUpdate_ReplacesInPlace(t *testing.T) {
	fake := &fakeAPI{updateTag: func(ctx context.Context, id string, p models.TagPayload) (*models.Tag, error) {
		return &models.Tag{ID: id, TagName: p.TagName, Description: p.Description}, nil
	}}
	s := newTagStore(t, fake)

	require.NoError(t, s.Update(context.Background(), "t1", models.TagPayload{TagName: "chatbots"}))
	got := s.Tags()
	require.Len(t, got, 2)
	assert.Equal(t, "chatbots", got[0].TagName)
	assert.Equal(t, "t1", got[0].ID, "order is preserved on in-place update")
}

func TestTagDelete_RemovesMatching(t *testing.T) {
	s := newTagStore(t, &fakeAPI{})

	require.NoError(t, s.Delete(context.Background(), "t1"))
	got := s.Tags()
	require.Len(t, got, 1)
	assert.Equal(t, "t2", got[0].ID)
}

func TestTagMutate_FailureLeavesListUnchanged(t *testing.T) {
	fake := &fakeAPI{deleteTag: func(ctx context.Context, id string) error {
		return &api.Error{Status: 409, Message: "tag is in use"}
	}}
	s := newTagStore(t, fake)

	err := s.Delete(context.Background(), "t1")
	require.Error(t, err)
	assert.Equal(t, tagFixture(), s.Tags())
	assert.Equal(t, "tag is in use", s.Err())
	assert.False(t, s.Loading())
}

func TestCategoryCreate_AppendsServerSlug(t *testing.T) {
	fake := &fakeAPI{
		listCategories: func(ctx context.Context) ([]models.Category, error) {
			return []models.Category{{ID: "cat1", CategoryName: "writing", Slug: "writing"}}, nil
		},
		addCategory: func(ctx context.Context, p models.CategoryPayload) (*models.Category, error) {
			return &models.Category{ID: "cat2", CategoryName: p.CategoryName, Slug: "code-tools"}, nil
		},
	}
	s := NewCategoryStore(fake, logging.Discard())
	ctx := context.Background()

	require.NoError(t, s.Fetch(ctx))
	require.NoError(t, s.Create(ctx, models.CategoryPayload{CategoryName: "Code Tools"}))

	got := s.Categories()
	require.Len(t, got, 2)
	assert.Equal(t, "code-tools", got[1].Slug, "slug comes from the server, never the client")
}

func TestCategoryDelete_RemovesMatching(t *testing.T) {
	fake := &fakeAPI{listCategories: func(ctx context.Context) ([]models.Category, error) {
		return []models.Category{{ID: "cat1"}, {ID: "cat2"}}, nil
	}}
	s := NewCategoryStore(fake, logging.Discard())
	ctx := context.Background()

	require.NoError(t, s.Fetch(ctx))
	require.NoError(t, s.Delete(ctx, "cat2"))

	got := s.Categories()
	require.Len(t, got, 1)
	assert.Equal(t, "cat1", got[0].ID)
}
