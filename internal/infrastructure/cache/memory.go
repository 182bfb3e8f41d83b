package cache

import (
	"context"
	"sync"
	"time"

	"github.com/giusMaffi/stiga-product-finder/internal/domain"
)

// cacheItem represents a single item in the cache with expiration
type cacheItem struct {
	Value      interface{}
	Expiration time.Time
}

// inflightCompute tracks a compute in progress so concurrent callers for the
// same key wait for one result instead of fetching twice
type inflightCompute struct {
	done  chan struct{}
	value interface{}
	err   error
}

// MemoryCache is a thread-safe in-memory cache with TTL support
type MemoryCache struct {
	data     map[string]cacheItem
	mutex    sync.RWMutex
	inflight map[string]*inflightCompute
	flightMu sync.Mutex
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		data:     make(map[string]cacheItem),
		inflight: make(map[string]*inflightCompute),
	}

	// Start cleanup goroutine to remove expired entries every 10 minutes
	go cache.cleanupExpired()

	return cache
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) (interface{}, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	// Check if expired
	if time.Now().After(item.Expiration) {
		return nil, domain.ErrCacheMiss
	}

	return item.Value, nil
}

// Set stores a value in the cache with TTL. An existing entry for the key is
// superseded; entries are never evicted other than by expiry.
func (c *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheItem{
		Value:      value,
		Expiration: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Exists checks if a key exists in the cache and is not expired
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return false, nil
	}

	if time.Now().After(item.Expiration) {
		return false, nil
	}

	return true, nil
}

// GetOrCompute returns the cached value for key when fresh, otherwise runs
// compute once and caches its result for ttl. Concurrent callers for the same
// key block on the single in-flight compute rather than duplicating it.
func (c *MemoryCache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	c.flightMu.Lock()
	if f, ok := c.inflight[key]; ok {
		c.flightMu.Unlock()
		select {
		case <-f.done:
			return f.value, f.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	// Re-check under the flight lock: a compute may have finished between
	// the unlocked Get above and acquiring the lock
	if v, err := c.Get(ctx, key); err == nil {
		c.flightMu.Unlock()
		return v, nil
	}
	f := &inflightCompute{done: make(chan struct{})}
	c.inflight[key] = f
	c.flightMu.Unlock()

	f.value, f.err = compute(ctx)
	if f.err == nil {
		c.Set(ctx, key, f.value, ttl)
	}

	c.flightMu.Lock()
	delete(c.inflight, key)
	c.flightMu.Unlock()
	close(f.done)

	return f.value, f.err
}

// cleanupExpired removes expired entries from the cache periodically
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, item := range c.data {
			if now.After(item.Expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}

// Size returns the current number of items in the cache (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all items from the cache
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]cacheItem)
}
