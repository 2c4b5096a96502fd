package stores

import (
	"context"

	"github.com/aidirectory/adminctl/internal/client/api"
	"github.com/aidirectory/adminctl/internal/client/models"
	"github.com/aidirectory/adminctl/internal/logging"
)

// TagStore owns the tag collection (not paginated).
type TagStore struct {
	opState
	api api.Client

	tags []models.Tag
}

func NewTagStore(c api.Client, log logging.Logger) *TagStore {
	s := &TagStore{api: c}
	s.log = log
	return s
}

func (s *TagStore) Fetch(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	tags, err := s.api.ListTags(ctx)
	if err != nil {
		s.fail(ctx, "fetch tags", err)
		return err
	}
	s.finish(func() {
		s.tags = tags
	})
	return nil
}

func (s *TagStore) Create(ctx context.Context, p models.TagPayload) error {
	if err := s.begin(); err != nil {
		return err
	}
	tag, err := s.api.AddTag(ctx, p)
	if err != nil {
		s.fail(ctx, "create tag", err)
		return err
	}
	s.finish(func() {
		s.tags = append(s.tags, *tag)
	})
	return nil
}

func (s *TagStore) Update(ctx context.Context, id string, p models.TagPayload) error {
	if err := s.begin(); err != nil {
		return err
	}
	tag, err := s.api.UpdateTag(ctx, id, p)
	if err != nil {
		s.fail(ctx, "update tag", err)
		return err
	}
	s.finish(func() {
		for i := range s.tags {
			if s.tags[i].ID == id {
				s.tags[i] = *tag
				break
			}
		}
	})
	return nil
}

func (s *TagStore) Delete(ctx context.Context, id string) error {
	if err := s.begin(); err != nil {
		return err
	}
	if err := s.api.DeleteTag(ctx, id); err != nil {
		s.fail(ctx, "delete tag", err)
		return err
	}
	s.finish(func() {
		kept := s.tags[:0]
		for _, tag := range s.tags {
			if tag.ID != id {
				kept = append(kept, tag)
			}
		}
		s.tags = kept
	})
	return nil
}

// Tags returns a copy of the collection in server order.
func (s *TagStore) Tags() []models.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	tags := make([]models.Tag, len(s.tags))
	copy(tags, s.tags)
	return tags
}
