// Package cache provides the in-memory TTL store shared by the scraper
package cache

import (
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache is a key/value store whose entries expire after a fixed TTL.
// Protected keys never expire until they are unprotected or deleted.
// A zero or negative TTL disables expiry. Safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu        sync.RWMutex
	ttl       time.Duration
	entries   map[K]entry[V]
	protected mapset.Set[K]
	now       func() time.Time
}

// New creates a cache with the given TTL
func New[K comparable, V any](ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		ttl:       ttl,
		entries:   make(map[K]entry[V]),
		protected: mapset.NewThreadUnsafeSet[K](),
		now:       time.Now,
	}
}

// TTL returns the configured time-to-live
func (c *Cache[K, V]) TTL() time.Duration { return c.ttl }

func (c *Cache[K, V]) expired(k K, e entry[V], now time.Time) bool {
	if c.ttl <= 0 || c.protected.Contains(k) {
		return false
	}
	return now.Sub(e.storedAt) > c.ttl
}

// Get returns the value stored under k if it is present and fresh
func (c *Cache[K, V]) Get(k K) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[k]
	if ok && c.expired(k, e, c.now()) {
		ok = false
	}
	c.mu.RUnlock()
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Contains reports whether k holds a fresh value
func (c *Cache[K, V]) Contains(k K) bool {
	_, ok := c.Get(k)
	return ok
}

// Set stores v under k and restarts its TTL
func (c *Cache[K, V]) Set(k K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[k] = entry[V]{value: v, storedAt: c.now()}
}

// Delete removes k together with its protection
func (c *Cache[K, V]) Delete(k K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, k)
	c.protected.Remove(k)
}

// Protect exempts k from expiry
func (c *Cache[K, V]) Protect(k K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.protected.Add(k)
}

// Unprotect makes k subject to expiry again
func (c *Cache[K, V]) Unprotect(k K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.protected.Remove(k)
}

// IsProtected reports whether k is exempt from expiry
func (c *Cache[K, V]) IsProtected(k K) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.protected.Contains(k)
}

// Keys returns the set of keys holding fresh values
func (c *Cache[K, V]) Keys() mapset.Set[K] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.now()
	keys := mapset.NewThreadUnsafeSetWithSize[K](len(c.entries))
	for k, e := range c.entries {
		if !c.expired(k, e, now) {
			keys.Add(k)
		}
	}
	return keys
}

// Len returns the number of fresh entries
func (c *Cache[K, V]) Len() int {
	return c.Keys().Cardinality()
}

// Purge drops expired entries and returns how many were removed
func (c *Cache[K, V]) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for k, e := range c.entries {
		if c.expired(k, e, now) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}
