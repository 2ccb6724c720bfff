package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	a := NoopAggregateHooks{}
	a.OnAggregateStart(ctx, "cat", []string{"serper", "tavily"})
	a.OnProviderComplete(ctx, "serper", 10, time.Second, nil)
	a.OnAggregateComplete(ctx, "cat", 10, time.Second)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "search-cat-all-20")
	c.OnCacheMiss(ctx, "trending-memes")
	c.OnCacheSet(ctx, "imgflip-templates", 1024)
	c.OnCacheEvict(ctx, "category-funny-1-20")

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "google.serper.dev", "/images")
	h.OnResponse(ctx, "POST", "google.serper.dev", "/images", 200, time.Second)
	h.OnError(ctx, "POST", "google.serper.dev", "/images", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Aggregate().(NoopAggregateHooks); !ok {
		t.Error("Aggregate() should return NoopAggregateHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customAggregate := &testAggregateHooks{}
	SetAggregateHooks(customAggregate)
	if Aggregate() != customAggregate {
		t.Error("SetAggregateHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Cache().OnCacheHit(context.Background(), "k")
	if customCache.hits != 1 {
		t.Errorf("hits = %d, want 1", customCache.hits)
	}

	Reset()
	if _, ok := Aggregate().(NoopAggregateHooks); !ok {
		t.Error("Reset() should restore NoopAggregateHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testAggregateHooks{}
	SetAggregateHooks(custom)

	SetAggregateHooks(nil)

	if Aggregate() != custom {
		t.Error("SetAggregateHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testAggregateHooks struct {
	NoopAggregateHooks
	calls int
}

type testCacheHooks struct {
	NoopCacheHooks
	hits int
}

func (h *testCacheHooks) OnCacheHit(context.Context, string) { h.hits++ }

type testHTTPHooks struct {
	NoopHTTPHooks
	requests int
}
