package external

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"forecastdash.app/internal/config"
	"forecastdash.app/internal/ports"
	"forecastdash.app/pkg/errors"
)

const (
	// redisIndexKey is a sorted set of stored keys scored by insertion sequence
	redisIndexKey = "forecastdash:index"
	redisSeqKey   = "forecastdash:seq"
)

// RedisCacheProviderAdapter implements CacheProvider port using Redis
type RedisCacheProviderAdapter struct {
	client *redis.Client
	stats  struct {
		hits   int64
		misses int64
		mutex  sync.RWMutex
	}
}

// NewRedisCacheProviderAdapter connects to Redis and verifies the connection
func NewRedisCacheProviderAdapter(config *config.RedisConfig) (*RedisCacheProviderAdapter, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewCacheError("failed to connect to Redis", err)
	}

	return &RedisCacheProviderAdapter{
		client: client,
	}, nil
}

// Get retrieves a value from Redis cache
func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			r.recordMiss()
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewCacheError("redis get operation failed", err)
	}

	r.recordHit()
	return val, nil
}

// Set stores a value and records the key in the insertion index.
// A zero ttl keeps the value until it is deleted.
func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl < 0 {
		return errors.NewValidationError("cache TTL cannot be negative")
	}

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.NewCacheError("redis set operation failed", err)
	}

	seq, err := r.client.Incr(ctx, redisSeqKey).Result()
	if err != nil {
		return errors.NewCacheError("redis sequence operation failed", err)
	}
	if err := r.client.ZAddNX(ctx, redisIndexKey, &redis.Z{Score: float64(seq), Member: key}).Err(); err != nil {
		return errors.NewCacheError("redis index operation failed", err)
	}

	return nil
}

// Delete removes a value and its index entry
func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.ZRem(ctx, redisIndexKey, key)
		return nil
	})
	if err != nil {
		return errors.NewCacheError("redis delete operation failed", err)
	}

	return nil
}

// Exists checks if a key exists in Redis cache
func (r *RedisCacheProviderAdapter) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	count, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, errors.NewCacheError("redis exists operation failed", err)
	}

	return count > 0, nil
}

// Keys walks the insertion index and prunes members whose value has expired
func (r *RedisCacheProviderAdapter) Keys(ctx context.Context, prefix string) ([]string, error) {
	members, err := r.client.ZRange(ctx, redisIndexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.NewCacheError("redis index read failed", err)
	}
	if len(members) == 0 {
		return []string{}, nil
	}

	pipe := r.client.Pipeline()
	checks := make([]*redis.IntCmd, len(members))
	for i, member := range members {
		checks[i] = pipe.Exists(ctx, member)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.NewCacheError("redis exists operation failed", err)
	}

	keys := make([]string, 0, len(members))
	var stale []interface{}
	for i, member := range members {
		if checks[i].Val() == 0 {
			stale = append(stale, member)
			continue
		}
		if strings.HasPrefix(member, prefix) {
			keys = append(keys, member)
		}
	}

	if len(stale) > 0 {
		if err := r.client.ZRem(ctx, redisIndexKey, stale...).Err(); err != nil {
			return nil, errors.NewCacheError("redis index cleanup failed", err)
		}
	}

	return keys, nil
}

// Clear removes every indexed key together with the index itself
func (r *RedisCacheProviderAdapter) Clear(ctx context.Context) error {
	members, err := r.client.ZRange(ctx, redisIndexKey, 0, -1).Result()
	if err != nil {
		return errors.NewCacheError("redis index read failed", err)
	}

	keys := append(members, redisIndexKey, redisSeqKey)
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return errors.NewCacheError("redis clear operation failed", err)
	}

	return nil
}

// GetStats returns cache statistics
func (r *RedisCacheProviderAdapter) GetStats() ports.CacheStats {
	r.stats.mutex.RLock()
	defer r.stats.mutex.RUnlock()

	total := r.stats.hits + r.stats.misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(r.stats.hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        r.stats.hits,
		Misses:      r.stats.misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}

func (r *RedisCacheProviderAdapter) recordHit() {
	r.stats.mutex.Lock()
	defer r.stats.mutex.Unlock()
	r.stats.hits++
}

func (r *RedisCacheProviderAdapter) recordMiss() {
	r.stats.mutex.Lock()
	defer r.stats.mutex.Unlock()
	r.stats.misses++
}

// Close closes the Redis client connection
func (r *RedisCacheProviderAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewCacheError("failed to close Redis connection", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewCacheError("Redis ping failed", err)
	}
	return nil
}
