package stores

import (
	"context"

	"github.com/aidirectory/adminctl/internal/client/api"
	"github.com/aidirectory/adminctl/internal/client/models"
	"github.com/aidirectory/adminctl/internal/logging"
)

// DashboardStore holds the aggregate statistics snapshot. The snapshot is
// immutable once fetched and replaced wholesale on the next fetch, never
// partially updated.
type DashboardStore struct {
	opState
	api api.Client

	stats *models.DashboardStats
}

func NewDashboardStore(c api.Client, log logging.Logger) *DashboardStore {
	s := &DashboardStore{api: c}
	s.log = log
	return s
}

func (s *DashboardStore) Fetch(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	stats, err := s.api.Summary(ctx)
	if err != nil {
		s.fail(ctx, "fetch dashboard", err)
		return err
	}
	s.finish(func() {
		s.stats = stats
	})
	return nil
}

// Stats returns a copy of the snapshot, or nil when none was fetched yet.
func (s *DashboardStore) Stats() *models.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats == nil {
		return nil
	}
	stats := *s.stats
	return &stats
}
