// Package cachemanager provides a generic in-memory cache with a
// read-through wrapper, used to keep chapter content warm while the
// reader navigates.
package cachemanager

import (
	"context"
	"time"
)

const DefaultExpiration = 10 * time.Minute
const DefaultCleanupInterval = 30 * time.Minute

// CacheManager is the storage contract the read-through cache builds on.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
