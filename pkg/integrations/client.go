package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/matzehuels/memelab/pkg/cache"
	"github.com/matzehuels/memelab/pkg/errors"
	"github.com/matzehuels/memelab/pkg/observability"
)

// Client provides shared HTTP functionality for all provider API clients.
// It applies default headers, maps non-2xx answers to
// [errors.ProviderError], emits HTTP hooks and fronts cacheable calls with a
// [cache.Cache].
//
// There are no retries: a failed call is reported once and the next inbound
// request tries again.
type Client struct {
	http     *resty.Client
	provider string
	cache    cache.Cache
	headers  map[string]string
}

// NewClient creates a Client for provider with the given cache and default
// headers. Pass nil for backend when the provider's responses are never
// cached, and nil for headers if no default headers are needed.
func NewClient(provider string, backend cache.Cache, headers map[string]string) *Client {
	if backend == nil {
		backend = cache.NewNullCache()
	}
	return &Client{
		http:     NewHTTPClient(),
		provider: provider,
		cache:    backend,
		headers:  headers,
	}
}

// Provider returns the provider identifier used in errors.
func (c *Client) Provider() string { return c.provider }

// Cached decodes the value stored under key into v, or calls fetch and stores
// the JSON encoding of v on success. The boolean reports a cache hit.
// Cache read and write failures are treated as misses.
func (c *Client) Cached(ctx context.Context, key string, v any, fetch func() error) (bool, error) {
	if data, ok, err := c.cache.Get(ctx, key); err == nil && ok {
		if json.Unmarshal(data, v) == nil {
			return true, nil
		}
	}
	if err := fetch(); err != nil {
		return false, err
	}
	if data, err := json.Marshal(v); err == nil {
		_ = c.cache.Set(ctx, key, data)
	}
	return false, nil
}

// GetJSON performs an HTTP GET with the given query parameters and
// JSON-decodes the response into v.
func (c *Client) GetJSON(ctx context.Context, rawURL string, query map[string]string, v any) error {
	req := c.request(ctx).SetQueryParams(query)
	return c.do(ctx, req, http.MethodGet, rawURL, v)
}

// PostJSON performs an HTTP POST with body encoded as JSON and decodes the
// response into v.
func (c *Client) PostJSON(ctx context.Context, rawURL string, body, v any) error {
	req := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	return c.do(ctx, req, http.MethodPost, rawURL, v)
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetHeaders(c.headers)
}

func (c *Client) do(ctx context.Context, req *resty.Request, method, rawURL string, v any) error {
	host, path := splitURL(rawURL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, method, host, path)

	start := time.Now()
	res, err := req.Execute(method, rawURL)
	if err != nil {
		hooks.OnError(ctx, method, host, path, err)
		return &errors.ProviderError{
			Provider: c.provider,
			Err:      fmt.Errorf("%w: %v", ErrNetwork, err),
		}
	}
	hooks.OnResponse(ctx, method, host, path, res.StatusCode(), time.Since(start))

	if err := checkStatus(res.StatusCode()); err != nil {
		return &errors.ProviderError{
			Provider: c.provider,
			Status:   res.StatusCode(),
			Body:     truncate(string(res.Body()), maxErrorBody),
			Err:      err,
		}
	}
	if v == nil {
		return nil
	}
	if err := json.Unmarshal(res.Body(), v); err != nil {
		return &errors.ProviderError{
			Provider: c.provider,
			Err:      fmt.Errorf("%w: %v", ErrDecode, err),
		}
	}
	return nil
}

func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return ErrStatus
	}
}

func splitURL(rawURL string) (host, path string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", rawURL
	}
	return u.Host, u.Path
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
