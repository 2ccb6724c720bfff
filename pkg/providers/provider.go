// Package providers holds the provider registry: the static table from
// source identifier to search adapter, grouped into priority tiers.
//
// Tiers only decide which providers take part in an aggregation when the
// caller names no sources. They carry no weight in the merged output.
//
// The template catalog is not tiered. It is folded into free-text searches
// by the pipeline rather than fanned out to like the search providers.
package providers

import (
	"context"

	"github.com/matzehuels/memelab/pkg/meme"
)

//go:generate mockgen -source=provider.go -destination=../../internal/mocks/providers/mock_provider.go -package=mock_providers

// Provider is a search adapter for one external backend.
type Provider interface {
	// Name returns the source identifier, e.g. "serper".
	Name() string

	// Configured reports whether the provider's credential is set.
	Configured() bool

	// Search returns up to count normalized results for query. An
	// unconfigured provider returns no results and no error.
	Search(ctx context.Context, query string, count int) ([]meme.Result, error)
}

// Catalog is the meme template catalog.
type Catalog interface {
	Provider

	// Templates returns the full catalog and whether it came from the cache.
	Templates(ctx context.Context) ([]meme.Template, bool, error)

	// Match returns up to limit templates whose name contains query.
	Match(ctx context.Context, query string, limit int) ([]meme.Template, error)
}
