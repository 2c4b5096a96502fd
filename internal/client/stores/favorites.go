package stores

import (
	"context"

	"github.com/aidirectory/adminctl/internal/client/api"
	"github.com/aidirectory/adminctl/internal/client/models"
	"github.com/aidirectory/adminctl/internal/logging"
)

// FavoriteStore owns the favorites list. Favorites are read-only from the
// admin's side: there is no create or delete operation.
type FavoriteStore struct {
	opState
	api api.Client

	favorites []models.Favorite
	count     int
}

func NewFavoriteStore(c api.Client, log logging.Logger) *FavoriteStore {
	s := &FavoriteStore{api: c}
	s.log = log
	return s
}

func (s *FavoriteStore) Fetch(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	favorites, count, err := s.api.ListFavorites(ctx)
	if err != nil {
		s.fail(ctx, "fetch favorites", err)
		return err
	}
	s.finish(func() {
		s.favorites = favorites
		s.count = count
	})
	return nil
}

// Favorites returns a copy of the list in server order.
func (s *FavoriteStore) Favorites() []models.Favorite {
	s.mu.Lock()
	defer s.mu.Unlock()
	favorites := make([]models.Favorite, len(s.favorites))
	copy(favorites, s.favorites)
	return favorites
}

// Count is the server-reported total, which can exceed len(Favorites()).
func (s *FavoriteStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
