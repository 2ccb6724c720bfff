// Package pipeline provides the cached request flow shared by the HTTP server
// and the CLI.
//
// Every operation follows the same shape: derive a cache key from the
// request, return the stored payload on a hit, otherwise run the aggregation
// (or the catalog lookup), store the JSON encoding and return it. A hit
// decodes exactly the bytes that were written, so repeated requests within
// the TTL window produce identical output.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, registry, logger)
//	res, err := runner.Search(ctx, pipeline.SearchOptions{
//	    Query:  "cat",
//	    Source: pipeline.SourceAll,
//	    Num:    pipeline.DefaultNum,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(res.Results), res.Cached)
package pipeline

import (
	"github.com/matzehuels/memelab/pkg/category"
	"github.com/matzehuels/memelab/pkg/errors"
	"github.com/matzehuels/memelab/pkg/meme"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// SourceAll selects the default provider set plus the catalog.
	SourceAll = "all"

	// DefaultNum is the requested result count when the caller gives none.
	DefaultNum = 20

	// MaxNum bounds the requested result count.
	MaxNum = 100

	// DefaultPage is the category page when the caller gives none.
	DefaultPage = 1

	// CatalogFoldLimit is how many catalog matches a SourceAll search adds.
	CatalogFoldLimit = 5
)

// =============================================================================
// Options - Request Parameters
// =============================================================================

// SearchOptions are the parameters of a free-text search. Source is
// alphanumeric so it cannot bleed into the neighbouring cache key parts;
// unknown identifiers are accepted and reported unavailable.
type SearchOptions struct {
	Query  string `query:"q"`
	Source string `query:"source" validate:"required,alphanum"`
	Num    int    `query:"num" validate:"min=1,max=100"`
}

// Validate checks the query text and count.
func (o SearchOptions) Validate() error {
	if err := errors.ValidateQuery(o.Query); err != nil {
		return err
	}
	return errors.ValidateStruct(o)
}

// CategoryOptions are the parameters of a category listing. Page only
// distinguishes cache entries; providers are not paged.
type CategoryOptions struct {
	Category string `query:"category" validate:"required"`
	Page     int    `query:"page" validate:"min=1"`
	Num      int    `query:"num" validate:"min=1,max=100"`
}

// Validate checks that the category exists before the numeric bounds, so an
// unknown category is always reported as such.
func (o CategoryOptions) Validate() error {
	if _, err := category.Resolve(o.Category); err != nil {
		return err
	}
	return errors.ValidateStruct(o)
}

// =============================================================================
// Result
// =============================================================================

// Result is the payload of a search, trending or category request.
type Result struct {
	Results []meme.Result     `json:"results"`
	Status  meme.SourceStatus `json:"sourceStatus,omitempty"`
	Sources []string          `json:"sources,omitempty"`

	// Cached reports whether the payload was served from the cache.
	Cached bool `json:"-"`
}

// Templates is the payload of a catalog listing.
type Templates struct {
	Templates []meme.Template
	Cached    bool
}
