// Package cache provides the key-value store used for product data and the
// refresh-token denylist. The Store interface is injected so tests can use
// the in-memory implementation without process-wide state.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when a key is absent or expired. Callers treat a
// miss as advisory and fall through to the next data source.
var ErrCacheMiss = errors.New("cache: key not found")

// Store is a minimal TTL'd key-value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
