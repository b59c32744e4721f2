package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for cache operations.
var (
	ErrNilCache = errors.New("cache: cache is nil")
)

// Cache is the interface for caching tool results.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: methods should honor cancellation/deadlines where applicable.
// - Errors: Get never errors; it returns (nil, false) on miss or expiry.
type Cache interface {
	// Get retrieves a cached value. Returns (nil, false) on miss.
	Get(ctx context.Context, key string) (any, bool)

	// Set stores a value with the given TTL. TTL<=0 means no caching.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes a cached value. Idempotent - no error on miss.
	Delete(ctx context.Context, key string) error
}
