package external

import (
	"context"
	"strings"
	"sync"
	"time"

	"forecastdash.app/internal/ports"
	"forecastdash.app/pkg/errors"
)

// MemoryCacheProvider keeps values in process memory and remembers the order
// keys were first stored in
type MemoryCacheProvider struct {
	data  map[string]memoryCacheItem
	order []string
	clock ports.Clock
	mutex sync.RWMutex
	stats struct {
		hits   int64
		misses int64
		mutex  sync.RWMutex
	}
}

type memoryCacheItem struct {
	data      []byte
	expiresAt time.Time
}

func (i memoryCacheItem) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && now.After(i.expiresAt)
}

func NewMemoryCacheProvider(clock ports.Clock) *MemoryCacheProvider {
	return &MemoryCacheProvider{
		data:  make(map[string]memoryCacheItem),
		clock: clock,
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists || item.expired(c.clock.Now()) {
		c.recordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}

	c.recordHit()
	return item.data, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl < 0 {
		return errors.NewValidationError("cache TTL cannot be negative")
	}

	item := memoryCacheItem{data: value}
	if ttl > 0 {
		item.expiresAt = c.clock.Now().Add(ttl)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, exists := c.data[key]; !exists {
		c.order = append(c.order, key)
	}
	c.data[key] = item

	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.remove(key)
	return nil
}

func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists {
		return false, nil
	}

	return !item.expired(c.clock.Now()), nil
}

// Keys returns live keys with the prefix in first-stored order and drops expired ones
func (c *MemoryCacheProvider) Keys(ctx context.Context, prefix string) ([]string, error) {
	now := c.clock.Now()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	keys := make([]string, 0, len(c.order))
	live := c.order[:0]
	for _, key := range c.order {
		item := c.data[key]
		if item.expired(now) {
			delete(c.data, key)
			continue
		}
		live = append(live, key)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	c.order = live

	return keys, nil
}

func (c *MemoryCacheProvider) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]memoryCacheItem)
	c.order = nil
	return nil
}

// remove expects the write lock to be held
func (c *MemoryCacheProvider) remove(key string) {
	if _, exists := c.data[key]; !exists {
		return
	}
	delete(c.data, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *MemoryCacheProvider) GetStats() ports.CacheStats {
	c.stats.mutex.RLock()
	defer c.stats.mutex.RUnlock()

	total := c.stats.hits + c.stats.misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(c.stats.hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        c.stats.hits,
		Misses:      c.stats.misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: c.clock.Now(),
	}
}

func (c *MemoryCacheProvider) recordHit() {
	c.stats.mutex.Lock()
	defer c.stats.mutex.Unlock()
	c.stats.hits++
}

func (c *MemoryCacheProvider) recordMiss() {
	c.stats.mutex.Lock()
	defer c.stats.mutex.Unlock()
	c.stats.misses++
}
