package aggregate

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/memelab/pkg/category"
	"github.com/matzehuels/memelab/pkg/meme"
	"github.com/matzehuels/memelab/pkg/observability"
	"github.com/matzehuels/memelab/pkg/providers"
)

const (
	// TrendingQuery is the fixed query of the trending listing.
	TrendingQuery = "trending memes 2025 viral"

	// TrendingCount is the fixed total of the trending listing.
	TrendingCount = 30
)

// Outcome is the result of one aggregation.
type Outcome struct {
	// Results are deduplicated, in active-set order. Never nil.
	Results []meme.Result

	// Status has one entry per requested identifier.
	Status meme.SourceStatus

	// Sources lists the providers that were invoked, in iteration order.
	Sources []string
}

// Aggregator runs searches across the providers of a registry.
type Aggregator struct {
	registry *providers.Registry
	logger   *log.Logger
}

// New creates an Aggregator. A nil logger uses log.Default().
func New(registry *providers.Registry, logger *log.Logger) *Aggregator {
	if logger == nil {
		logger = log.Default()
	}
	return &Aggregator{registry: registry, logger: logger}
}

// Aggregate searches query across sources, or across every tiered provider
// when sources is empty, asking for total results overall.
func (a *Aggregator) Aggregate(ctx context.Context, query string, total int, sources []string) Outcome {
	start := time.Now()
	names := sources
	if len(names) == 0 {
		names = a.registry.Default()
	}
	names = unique(names)

	status := make(meme.SourceStatus, len(names))
	var (
		active  []providers.Provider
		invoked []string
	)
	for _, name := range names {
		p, ok := a.registry.Get(name)
		if !ok || !p.Configured() {
			status[name] = meme.StatusUnavailable
			continue
		}
		active = append(active, p)
		invoked = append(invoked, name)
	}
	observability.Aggregate().OnAggregateStart(ctx, query, invoked)

	outcome := Outcome{
		Results: []meme.Result{},
		Status:  status,
		Sources: invoked,
	}
	if len(active) == 0 {
		a.logger.Debug("no providers available", "query", query, "requested", names)
		observability.Aggregate().OnAggregateComplete(ctx, query, 0, time.Since(start))
		return outcome
	}

	per := perProvider(total, len(active))
	calls := make([]call, len(active))

	var g errgroup.Group
	for i, p := range active {
		g.Go(func() error {
			calls[i] = a.search(ctx, p, invoked[i], query, per)
			return nil
		})
	}
	_ = g.Wait()

	var merged []meme.Result
	for i, c := range calls {
		status[invoked[i]] = meme.StatusFor(len(c.results), c.err)
		merged = append(merged, c.results...)
	}
	outcome.Results = meme.Dedupe(merged)

	a.logger.Debug("aggregated",
		"query", query,
		"providers", len(active),
		"per_provider", per,
		"results", len(outcome.Results),
		"elapsed", time.Since(start).Round(time.Millisecond))
	observability.Aggregate().OnAggregateComplete(ctx, query, len(outcome.Results), time.Since(start))
	return outcome
}

// Trending aggregates the fixed trending query across the default set.
func (a *Aggregator) Trending(ctx context.Context) Outcome {
	return a.Aggregate(ctx, TrendingQuery, TrendingCount, nil)
}

// Category aggregates the canned query of category id across the default
// set. An unknown id fails with ErrCodeInvalidCategory before any provider
// is invoked.
func (a *Aggregator) Category(ctx context.Context, id string, total int) (Outcome, error) {
	c, err := category.Resolve(id)
	if err != nil {
		return Outcome{}, err
	}
	return a.Aggregate(ctx, c.Query, total, nil), nil
}

type call struct {
	results []meme.Result
	err     error
}

// search invokes one provider and turns every failure, panics included,
// into an error value.
func (a *Aggregator) search(ctx context.Context, p providers.Provider, name, query string, count int) (c call) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			c = call{err: fmt.Errorf("%s: panic: %v", name, r)}
		}
		elapsed := time.Since(start)
		if c.err != nil {
			c.results = nil
			a.logger.Warn("provider failed", "source", name, "err", c.err, "elapsed", elapsed.Round(time.Millisecond))
		} else {
			a.logger.Debug("provider done", "source", name, "results", len(c.results), "elapsed", elapsed.Round(time.Millisecond))
		}
		observability.Aggregate().OnProviderComplete(ctx, name, len(c.results), elapsed, c.err)
	}()

	results, err := p.Search(ctx, query, count)
	return call{results: results, err: err}
}

// perProvider is ceil(total / n).
func perProvider(total, n int) int {
	if n <= 0 || total <= 0 {
		return 0
	}
	return (total + n - 1) / n
}

func unique(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
