package cache

import (
	"sync"
	"time"
)

const (
	// DefaultCapacity bounds the number of live entries.
	DefaultCapacity = 256

	// DefaultTTL is the default entry lifetime.
	DefaultTTL = 5 * time.Minute
)

// entry is a cached value with its insertion timestamp. Entries are created
// on first computation and never mutated in place.
type entry[V any] struct {
	value      V
	insertedAt time.Time
	hits       uint64
}

// Metrics is a point-in-time snapshot of cache effectiveness counters.
type Metrics struct {
	Hits      uint64  `json:"hits"`
	Misses    uint64  `json:"misses"`
	Evictions uint64  `json:"evictions"`
	Size      int     `json:"size"`
	HitRate   float64 `json:"hit_rate"`
}

// Cache is a bounded key/value store with per-entry TTL. Expiry is checked
// lazily on read; there is no background sweep. When at capacity, Set
// evicts the entry with the oldest insertion timestamp. Eviction order is
// insertion order, not last-access order; Get does not refresh an entry's
// position.
//
// Cache is the only mutable structure shared between requests, so every
// operation holds the mutex.
type Cache[V any] struct {
	mu       sync.Mutex
	entries  map[string]*entry[V]
	capacity int
	ttl      time.Duration

	hits      uint64
	misses    uint64
	evictions uint64

	// now is the time source, replaceable in tests.
	now func() time.Time
}

// Option configures a Cache.
type Option[V any] func(*Cache[V])

// WithClock replaces the wall-clock time source. Tests use it to drive TTL
// expiry deterministically.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(c *Cache[V]) { c.now = now }
}

// New creates a Cache with the given capacity and TTL. Non-positive values
// fall back to the defaults.
func New[V any](capacity int, ttl time.Duration, opts ...Option[V]) *Cache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cache[V]{
		entries:  make(map[string]*entry[V], capacity),
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value for key. An entry older than the TTL is
// treated as, and converted into, a miss: it is evicted and both the miss
// and eviction counters advance.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return zero, false
	}
	if c.now().Sub(e.insertedAt) > c.ttl {
		delete(c.entries, key)
		c.evictions++
		c.misses++
		return zero, false
	}
	e.hits++
	c.hits++
	return e.value, true
}

// Set stores a value under key. If the cache is at capacity and the key is
// absent, the oldest-inserted entry is evicted first, so size never exceeds
// capacity.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.evictOldestLocked()
	}
	c.entries[key] = &entry[V]{value: value, insertedAt: c.now()}
}

// evictOldestLocked removes the entry with the oldest insertion timestamp.
// Caller must hold the mutex.
func (c *Cache[V]) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	first := true
	for key, e := range c.entries {
		if first || e.insertedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = e.insertedAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
		c.evictions++
	}
}

// Clear drops every entry. Counters are process-lifetime and survive.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry[V], c.capacity)
}

// Len returns the current number of live entries.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[V]) Stats() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := Metrics{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.entries),
	}
	if total := c.hits + c.misses; total > 0 {
		m.HitRate = float64(c.hits) / float64(total)
	}
	return m
}
