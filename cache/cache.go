// api/cache/cache.go
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when a key is absent or expired. Any
// other error from the store is a connectivity problem; the two are never
// conflated.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is a shared TTL-based key-value store. Permission sets and rate
// counters both live behind this interface under their own key prefixes.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Flush(ctx context.Context) error
	// Increment atomically increments the counter at key and re-applies
	// ttl as the expiry, returning the new value.
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
