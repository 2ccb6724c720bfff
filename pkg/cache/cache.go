// Package cache provides the short-lived result cache that fronts every
// provider call.
//
// # Backends
//
//   - [MemoryCache]: process-wide, time-to-live per entry, bounded entry
//     count with first-in-first-out eviction. This is the default.
//   - [RedisCache]: the same contract shared across several instances.
//   - [NullCache]: never stores anything (CLI --no-cache).
//
// # Semantics
//
// Expiration is write-time only: reads never refresh an entry. Expired
// entries are removed lazily when read; nothing sweeps them proactively.
// When an insert pushes the entry count above the bound, exactly one entry
// is evicted: the oldest by insertion slot. Overwriting an existing key
// resets its TTL clock but keeps its original slot.
//
// # Keys
//
// The cache is key-shape agnostic. Callers build composite keys with a
// [Keyer]:
//
//	k := cache.NewDefaultKeyer()
//	k.SearchKey("cat", "all", 20) // "search-cat-all-20"
package cache

import (
	"context"
	"time"
)

const (
	// DefaultTTL is how long an entry is served after it was written.
	DefaultTTL = 10 * time.Minute

	// DefaultMaxEntries bounds the number of entries held at once.
	DefaultMaxEntries = 200
)

// Cache is the interface implemented by all cache backends.
//
// Values are opaque byte slices (the pipeline stores JSON), so a hit returns
// exactly the bytes that were written. Callers must not modify returned
// slices.
type Cache interface {
	// Get returns the value stored under key. The boolean is false when the
	// key is absent or its entry has expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key, overwriting any prior entry and resetting
	// its TTL clock.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Len reports the number of entries currently held.
	Len(ctx context.Context) (int, error)

	// Close releases resources held by the backend.
	Close() error
}
