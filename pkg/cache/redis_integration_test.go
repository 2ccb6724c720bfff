//go:build integration

package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestRedisCache(t *testing.T, maxEntries int) *RedisCache {
	t.Helper()
	addr := os.Getenv("MEMELAB_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("MEMELAB_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, RedisConfig{
		Addr:       addr,
		Namespace:  "memelab-test-" + uuid.NewString() + ":",
		TTL:        time.Minute,
		MaxEntries: maxEntries,
	})
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	t.Cleanup(func() {
		c.rdb.Del(ctx, c.orderKey, c.memberKey)
		c.Close()
	})
	return c
}

func TestRedisCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c := newTestRedisCache(t, 10)
	key := "redis-it-" + uuid.NewString()
	defer c.Delete(ctx, key)

	if _, hit, err := c.Get(ctx, key); err != nil || hit {
		t.Fatalf("Get before Set = (%v, %v)", hit, err)
	}
	if err := c.Set(ctx, key, []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "v" {
		t.Errorf("Get = (%q, %v, %v)", data, hit, err)
	}
}

func TestRedisCacheCapacity(t *testing.T) {
	ctx := context.Background()
	c := newTestRedisCache(t, 3)
	prefix := "redis-it-" + uuid.NewString()

	var keys []string
	for i := 0; i < 4; i++ {
		k := fmt.Sprintf("%s-%d", prefix, i)
		keys = append(keys, k)
		if err := c.Set(ctx, k, []byte("v")); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	defer func() {
		for _, k := range keys {
			c.Delete(ctx, k)
		}
	}()

	if n, _ := c.Len(ctx); n != 3 {
		t.Errorf("Len = %d, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, keys[0]); hit {
		t.Error("oldest key should have been evicted")
	}
}

func TestRedisCacheOverwriteKeepsSlot(t *testing.T) {
	ctx := context.Background()
	c := newTestRedisCache(t, 2)
	prefix := "redis-it-" + uuid.NewString()
	a, b, d := prefix+"-a", prefix+"-b", prefix+"-d"
	defer func() {
		for _, k := range []string{a, b, d} {
			c.Delete(ctx, k)
		}
	}()

	for _, k := range []string{a, b, a} {
		if err := c.Set(ctx, k, []byte("v")); err != nil {
			t.Fatalf("Set %s: %v", k, err)
		}
	}
	if n, _ := c.Len(ctx); n != 2 {
		t.Fatalf("Len after overwrite = %d, want 2", n)
	}
	if members, _ := c.rdb.SCard(ctx, c.memberKey).Result(); members != 2 {
		t.Errorf("members = %d, want 2", members)
	}

	c.Set(ctx, d, []byte("v"))
	if _, hit, _ := c.Get(ctx, a); hit {
		t.Error("a should be evicted first despite the overwrite")
	}
	if n, _ := c.Len(ctx); n != 2 {
		t.Errorf("Len = %d, want 2", n)
	}
	if members, _ := c.rdb.SCard(ctx, c.memberKey).Result(); members != 2 {
		t.Errorf("members after eviction = %d, want 2", members)
	}
}
