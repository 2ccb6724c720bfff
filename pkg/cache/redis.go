package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/memelab/pkg/observability"
)

// RedisConfig configures a RedisCache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// Namespace prefixes the bookkeeping keys of the FIFO index. Data keys
	// are stored exactly as given; scope them with a ScopedKeyer.
	Namespace string

	TTL        time.Duration // defaults to DefaultTTL
	MaxEntries int           // defaults to DefaultMaxEntries
}

// RedisCache implements Cache on top of Redis so several instances can share
// one result cache.
//
// Entries expire through Redis' own key expiry with the same write-time TTL
// as MemoryCache. The entry bound is enforced with an insertion-order list:
// a key is appended on its first write only, and when the list grows past
// MaxEntries its head is popped and deleted. Writes run as one Lua script.
type RedisCache struct {
	rdb        *redis.Client
	ttl        time.Duration
	maxEntries int
	orderKey   string
	memberKey  string
}

// NewRedisCache connects to Redis and verifies the connection with PING.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	return newRedisCache(rdb, cfg), nil
}

func newRedisCache(rdb *redis.Client, cfg RedisConfig) *RedisCache {
	ns := cfg.Namespace
	if ns == "" {
		ns = "memelab:"
	}
	c := &RedisCache{
		rdb:        rdb,
		ttl:        cfg.TTL,
		maxEntries: cfg.MaxEntries,
		orderKey:   ns + "cache:order",
		memberKey:  ns + "cache:members",
	}
	if c.ttl <= 0 {
		c.ttl = DefaultTTL
	}
	if c.maxEntries <= 0 {
		c.maxEntries = DefaultMaxEntries
	}
	return c
}

// Get returns the stored value. Expired keys are already gone in Redis and
// are reported as a miss.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.Cache().OnCacheMiss(ctx, key)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	observability.Cache().OnCacheHit(ctx, key)
	return data, true, nil
}

// setScript writes the value and, on the first write of a key, appends it to
// the order list, all in one atomic step. It returns the evicted key or nil.
//
// KEYS: order list, member set, data key. ARGV: value, TTL in ms, bound.
var setScript = redis.NewScript(`
redis.call('SET', KEYS[3], ARGV[1], 'PX', ARGV[2])
if redis.call('SADD', KEYS[2], KEYS[3]) == 0 then
	return false
end
if redis.call('RPUSH', KEYS[1], KEYS[3]) <= tonumber(ARGV[3]) then
	return false
end
local oldest = redis.call('LPOP', KEYS[1])
if not oldest then
	return false
end
redis.call('DEL', oldest)
redis.call('SREM', KEYS[2], oldest)
return oldest
`)

// Set writes data with a fresh TTL and evicts the oldest slot once the
// index exceeds MaxEntries. The write and the index update are atomic, so a
// stored key is always evictable.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte) error {
	evicted, err := setScript.Run(ctx, c.rdb,
		[]string{c.orderKey, c.memberKey, key},
		data, c.ttl.Milliseconds(), c.maxEntries,
	).Text()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	observability.Cache().OnCacheSet(ctx, key, len(data))
	if evicted != "" {
		observability.Cache().OnCacheEvict(ctx, evicted)
	}
	return nil
}

// Delete removes key and its index slot.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.SRem(ctx, c.memberKey, key)
		pipe.LRem(ctx, c.orderKey, 0, key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis delete %s: %w", key, err)
	}
	return nil
}

// Len reports the number of indexed slots, including keys that Redis has
// already expired but that were not evicted yet.
func (c *RedisCache) Len(ctx context.Context) (int, error) {
	n, err := c.rdb.LLen(ctx, c.orderKey).Result()
	if err != nil {
		return 0, fmt.Errorf("redis len: %w", err)
	}
	return int(n), nil
}

// Close closes the Redis connection pool.
func (c *RedisCache) Close() error {
	return c.rdb.Close()
}

// Ensure RedisCache implements Cache.
var _ Cache = (*RedisCache)(nil)
