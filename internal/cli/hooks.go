package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/memelab/pkg/observability"
)

// logHooks reports aggregation, cache and outbound HTTP events at debug level.
type logHooks struct {
	logger *log.Logger
}

// registerLogHooks routes every observability event to logger.
func registerLogHooks(logger *log.Logger) {
	h := logHooks{logger: logger}
	observability.SetAggregateHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h logHooks) OnAggregateStart(_ context.Context, query string, sources []string) {
	h.logger.Debug("aggregate start", "query", query, "sources", sources)
}

func (h logHooks) OnProviderComplete(_ context.Context, source string, results int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("provider", "source", source, "err", err, "duration", d.Round(time.Millisecond))
		return
	}
	h.logger.Debug("provider", "source", source, "results", results, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnAggregateComplete(_ context.Context, query string, results int, d time.Duration) {
	h.logger.Debug("aggregate done", "query", query, "results", results, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnCacheHit(_ context.Context, key string)  { h.logger.Debug("cache hit", "key", key) }
func (h logHooks) OnCacheMiss(_ context.Context, key string) { h.logger.Debug("cache miss", "key", key) }
func (h logHooks) OnCacheEvict(_ context.Context, key string) {
	h.logger.Debug("cache evict", "key", key)
}

func (h logHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", key, "bytes", size)
}

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}
