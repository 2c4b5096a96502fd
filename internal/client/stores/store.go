// Package stores contains the entity stores: each one exclusively owns one
// collection's in-memory state ({list, loading, error}) and the operations
// that mutate it through the API gateway. The view layer reads snapshots and
// invokes operations; it never touches the state directly.
//
// Every operation follows the same envelope: error state is cleared when the
// operation starts, the loading flag is true for exactly the span of the
// request, and a failed operation leaves the collection untouched. A second
// operation started while one is in flight fails fast with ErrBusy before
// any network I/O.
package stores

import (
	"context"
	"errors"
	"sync"

	"github.com/aidirectory/adminctl/internal/client/api"
	"github.com/aidirectory/adminctl/internal/logging"
)

// ErrBusy rejects an operation started while another one on the same store
// is still in flight.
var ErrBusy = errors.New("operation already in flight")

// opState is the shared operation envelope embedded in every store. Its
// mutex also guards the embedding store's collection fields, so list
// mutations go through finish.
type opState struct {
	mu      sync.Mutex
	loading bool
	errMsg  string
	log     logging.Logger
}

// begin starts an operation: rejects when one is in flight, clears stale
// error state, raises the loading flag.
func (s *opState) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return ErrBusy
	}
	s.loading = true
	s.errMsg = ""
	return nil
}

// fail settles a failed operation: loading drops, the normalized message is
// recorded, the collection stays as it was.
func (s *opState) fail(ctx context.Context, op string, err error) {
	msg := api.Message(err)
	s.mu.Lock()
	s.loading = false
	s.errMsg = msg
	s.mu.Unlock()
	s.log.Warn(ctx, "store operation failed", "op", op, "error", msg)
}

// finish settles a successful operation, applying the collection mutation
// under the lock.
func (s *opState) finish(apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.errMsg = ""
	if apply != nil {
		apply()
	}
}

// Loading reports whether an operation is in flight.
func (s *opState) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the display message of the last failed operation, or "" when
// the last operation succeeded (or none ran yet).
func (s *opState) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
