package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/memelab/pkg/aggregate"
	"github.com/matzehuels/memelab/pkg/cache"
	"github.com/matzehuels/memelab/pkg/category"
	"github.com/matzehuels/memelab/pkg/errors"
	"github.com/matzehuels/memelab/pkg/meme"
	"github.com/matzehuels/memelab/pkg/providers"
)

// Runner executes requests against a provider registry with caching.
// Both CLI and API use it so cache keys and folding rules stay identical.
//
// The Runner holds no per-request state; multiple goroutines can use the
// same Runner concurrently.
type Runner struct {
	Cache      cache.Cache
	Keyer      cache.Keyer
	Registry   *providers.Registry
	Aggregator *aggregate.Aggregator
	Logger     *log.Logger
}

// NewRunner creates a runner over registry.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, registry *providers.Registry, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:      c,
		Keyer:      keyer,
		Registry:   registry,
		Aggregator: aggregate.New(registry, logger),
		Logger:     logger,
	}
}

// Search runs a free-text search.
//
// SourceAll aggregates the default provider set and appends up to
// CatalogFoldLimit catalog matches. The catalog identifier runs only the
// catalog filter, up to opts.Num. Any other identifier runs that single
// provider, or reports it unavailable.
func (r *Runner) Search(ctx context.Context, opts SearchOptions) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	key := r.Keyer.SearchKey(opts.Query, opts.Source, opts.Num)
	return r.cached(ctx, key, func(ctx context.Context) (*Result, error) {
		switch {
		case opts.Source == SourceAll:
			res := fromOutcome(r.Aggregator.Aggregate(ctx, opts.Query, opts.Num, nil))
			r.foldCatalog(ctx, res, opts.Query, CatalogFoldLimit)
			return res, nil
		case r.isCatalog(opts.Source):
			res := &Result{Results: []meme.Result{}, Status: meme.SourceStatus{}}
			r.foldCatalog(ctx, res, opts.Query, opts.Num)
			return res, nil
		default:
			return fromOutcome(r.Aggregator.Aggregate(ctx, opts.Query, opts.Num, []string{opts.Source})), nil
		}
	})
}

// Trending runs the fixed trending query across the default provider set.
func (r *Runner) Trending(ctx context.Context) (*Result, error) {
	return r.cached(ctx, r.Keyer.TrendingKey(), func(ctx context.Context) (*Result, error) {
		return fromOutcome(r.Aggregator.Trending(ctx)), nil
	})
}

// Category runs the canned query of a category. An unknown category fails
// with ErrCodeInvalidCategory before the cache or any provider is touched.
func (r *Runner) Category(ctx context.Context, opts CategoryOptions) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	key := r.Keyer.CategoryKey(opts.Category, opts.Page, opts.Num)
	return r.cached(ctx, key, func(ctx context.Context) (*Result, error) {
		out, err := r.Aggregator.Category(ctx, opts.Category, opts.Num)
		if err != nil {
			return nil, err
		}
		return fromOutcome(out), nil
	})
}

// Templates returns the full catalog. Upstream failures are returned as
// errors since there is no partial result to serve.
func (r *Runner) Templates(ctx context.Context) (*Templates, error) {
	catalog := r.Registry.Catalog()
	if catalog == nil {
		return nil, errors.New(errors.ErrCodeConfigurationAbsent, "No template catalog configured")
	}
	templates, cached, err := catalog.Templates(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUpstream, err, "Failed to fetch templates")
	}
	if templates == nil {
		templates = []meme.Template{}
	}
	return &Templates{Templates: templates, Cached: cached}, nil
}

// Categories returns the category table.
func (r *Runner) Categories() []meme.Category {
	return category.All()
}

// Sources returns the identifiers currently usable as a search source.
func (r *Runner) Sources() []string {
	return r.Registry.Sources()
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// cached returns the payload stored under key, or computes, stores and
// returns it. Cache failures degrade to a miss or an unstored result.
//
// compute and the store run detached from ctx cancellation: a caller that
// goes away must not leave a result of cancelled provider calls behind.
// Provider timeouts still bound the work.
func (r *Runner) cached(ctx context.Context, key string, compute func(context.Context) (*Result, error)) (*Result, error) {
	if data, hit, err := r.Cache.Get(ctx, key); err != nil {
		r.Logger.Warn("cache read failed", "key", key, "err", err)
	} else if hit {
		var res Result
		if err := json.Unmarshal(data, &res); err == nil {
			res.Cached = true
			r.Logger.Debug("cache hit", "key", key)
			return &res, nil
		}
		r.Logger.Warn("discarding unreadable cache entry", "key", key)
	}

	ctx = context.WithoutCancel(ctx)
	start := time.Now()
	res, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	r.Logger.Info("computed",
		"key", key,
		"results", len(res.Results),
		"duration", time.Since(start).Round(time.Millisecond))

	data, err := json.Marshal(res)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode results")
	}
	if err := r.Cache.Set(ctx, key, data); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "err", err)
	}
	return res, nil
}

// foldCatalog appends up to limit catalog matches for query to res and
// records the catalog's status. A catalog failure contributes no results.
func (r *Runner) foldCatalog(ctx context.Context, res *Result, query string, limit int) {
	catalog := r.Registry.Catalog()
	if catalog == nil {
		return
	}
	name := catalog.Name()
	matches, err := catalog.Search(ctx, query, limit)
	if err != nil {
		r.Logger.Warn("catalog failed", "source", name, "err", err)
		matches = nil
	}
	res.Status[name] = meme.StatusFor(len(matches), err)
	res.Sources = append(res.Sources, name)
	res.Results = meme.Dedupe(append(res.Results, matches...))
}

func (r *Runner) isCatalog(source string) bool {
	catalog := r.Registry.Catalog()
	return catalog != nil && catalog.Name() == source
}

func fromOutcome(out aggregate.Outcome) *Result {
	return &Result{Results: out.Results, Status: out.Status, Sources: out.Sources}
}
