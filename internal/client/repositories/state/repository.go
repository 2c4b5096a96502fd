// Package state persists small client-side key/value state (the session
// snapshot) in the local database.
package state

import "context"

// Repository is a string-keyed blob store. Get returns (nil, nil) when the
// key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
