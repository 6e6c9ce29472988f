package ports

import (
	"context"
	"time"
)

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64
	Misses      int64
	TotalOps    int64
	HitRatio    float64
	LastUpdated time.Time
}

// CacheProvider defines the contract for caching operations.
// A zero ttl stores the value without expiry. Keys returns live keys with
// the given prefix in the order they were first stored.
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Keys(ctx context.Context, prefix string) ([]string, error)
	Clear(ctx context.Context) error
}

// CacheMetrics exposes the hit/miss counters a cache backend keeps for its own reads
type CacheMetrics interface {
	GetStats() CacheStats
}

// Pinger is implemented by cache providers backed by a remote server
type Pinger interface {
	Ping(ctx context.Context) error
}
