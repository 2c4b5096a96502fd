package stores

import (
	"context"

	"github.com/aidirectory/adminctl/internal/client/api"
	"github.com/aidirectory/adminctl/internal/client/models"
	"github.com/aidirectory/adminctl/internal/logging"
)

// CategoryStore owns the category collection. The collection is not
// paginated, so mutations patch the list in place with the server's canonical
// entity instead of re-fetching.
type CategoryStore struct {
	opState
	api api.Client

	categories []models.Category
}

func NewCategoryStore(c api.Client, log logging.Logger) *CategoryStore {
	s := &CategoryStore{api: c}
	s.log = log
	return s
}

// Fetch replaces the collection wholesale with the server's list.
func (s *CategoryStore) Fetch(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		s.fail(ctx, "fetch categories", err)
		return err
	}
	s.finish(func() {
		s.categories = categories
	})
	return nil
}

// Create appends the server-returned canonical category (which carries the
// server-derived slug and id).
func (s *CategoryStore) Create(ctx context.Context, p models.CategoryPayload) error {
	if err := s.begin(); err != nil {
		return err
	}
	category, err := s.api.AddCategory(ctx, p)
	if err != nil {
		s.fail(ctx, "create category", err)
		return err
	}
	s.finish(func() {
		s.categories = append(s.categories, *category)
	})
	return nil
}

// Update replaces the matching element in place.
func (s *CategoryStore) Update(ctx context.Context, id string, p models.CategoryPayload) error {
	if err := s.begin(); err != nil {
		return err
	}
	category, err := s.api.UpdateCategory(ctx, id, p)
	if err != nil {
		s.fail(ctx, "update category", err)
		return err
	}
	s.finish(func() {
		for i := range s.categories {
			if s.categories[i].ID == id {
				s.categories[i] = *category
				break
			}
		}
	})
	return nil
}

// Delete removes the matching element.
func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	if err := s.begin(); err != nil {
		return err
	}
	if err := s.api.DeleteCategory(ctx, id); err != nil {
		s.fail(ctx, "delete category", err)
		return err
	}
	s.finish(func() {
		kept := s.categories[:0]
		for _, c := range s.categories {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		s.categories = kept
	})
	return nil
}

// Categories returns a copy of the collection in server order.
func (s *CategoryStore) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	categories := make([]models.Category, len(s.categories))
	copy(categories, s.categories)
	return categories
}
