package cache

import (
	"bytes"
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/matzehuels/memelab/pkg/observability"
)

// MemoryCache is an in-process cache with a fixed TTL per entry and a bounded
// entry count.
//
// Eviction is plain FIFO by insertion slot: the slot is assigned on the first
// write of a key and never moves, even when the key is overwritten. Access
// recency plays no part.
//
// All methods are safe for concurrent use. Two concurrent misses on the same
// key may both compute a value; the later Set simply overwrites.
type MemoryCache struct {
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	mu      sync.Mutex
	order   *list.List // keys in insertion order, front is oldest
	entries map[string]*memoryEntry
}

type memoryEntry struct {
	value      []byte
	insertedAt time.Time
	slot       *list.Element
}

// MemoryOption configures a MemoryCache.
type MemoryOption func(*MemoryCache)

// WithTTL overrides DefaultTTL. Non-positive values are ignored.
func WithTTL(ttl time.Duration) MemoryOption {
	return func(c *MemoryCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithMaxEntries overrides DefaultMaxEntries. Non-positive values are ignored.
func WithMaxEntries(n int) MemoryOption {
	return func(c *MemoryCache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(c *MemoryCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewMemoryCache creates an empty MemoryCache using DefaultTTL and
// DefaultMaxEntries unless overridden.
func NewMemoryCache(opts ...MemoryOption) *MemoryCache {
	c := &MemoryCache{
		ttl:        DefaultTTL,
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
		order:      list.New(),
		entries:    make(map[string]*memoryEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the time-to-live applied to every entry.
func (c *MemoryCache) TTL() time.Duration { return c.ttl }

// MaxEntries returns the entry bound.
func (c *MemoryCache) MaxEntries() int { return c.maxEntries }

// Get returns the stored value. An entry whose age exceeds the TTL is deleted
// and reported as absent; an entry exactly TTL old is still served.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && c.now().Sub(e.insertedAt) > c.ttl {
		c.remove(key, e)
		ok = false
	} else if ok {
		value = e.value
	}
	c.mu.Unlock()

	if !ok {
		observability.Cache().OnCacheMiss(ctx, key)
		return nil, false, nil
	}
	observability.Cache().OnCacheHit(ctx, key)
	return value, true, nil
}

// Set stores a copy of data under key with a fresh insertion time. If the
// entry count then exceeds the bound, the oldest slot is evicted.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte) error {
	value := bytes.Clone(data)

	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		e.value = value
		e.insertedAt = c.now()
	} else {
		c.entries[key] = &memoryEntry{
			value:      value,
			insertedAt: c.now(),
			slot:       c.order.PushBack(key),
		}
	}

	var (
		evicted  string
		didEvict bool
	)
	if c.order.Len() > c.maxEntries {
		evicted, didEvict = c.order.Front().Value.(string), true
		c.remove(evicted, c.entries[evicted])
	}
	c.mu.Unlock()

	observability.Cache().OnCacheSet(ctx, key, len(value))
	if didEvict {
		observability.Cache().OnCacheEvict(ctx, evicted)
	}
	return nil
}

// Delete removes key if present.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		c.remove(key, e)
	}
	return nil
}

// Len reports the number of entries held, including expired entries that
// have not been read since they expired.
func (c *MemoryCache) Len(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries), nil
}

// Close does nothing for the memory cache.
func (c *MemoryCache) Close() error {
	return nil
}

// remove deletes e from both indexes. c.mu must be held.
func (c *MemoryCache) remove(key string, e *memoryEntry) {
	c.order.Remove(e.slot)
	delete(c.entries, key)
}

// Ensure MemoryCache implements Cache.
var _ Cache = (*MemoryCache)(nil)
