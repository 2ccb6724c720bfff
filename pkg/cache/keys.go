package cache

import (
	"strconv"
	"strings"
)

// Keyer builds cache keys from logical request parameters.
//
// Keys are plain strings joined with "-". Two requests that differ in any
// parameter that affects the provider calls must map to different keys.
type Keyer interface {
	// SearchKey is the key of a free-text search.
	SearchKey(query, source string, num int) string

	// TrendingKey is the key of the trending listing.
	TrendingKey() string

	// CategoryKey is the key of one page of a category listing.
	CategoryKey(category string, page, num int) string

	// TemplatesKey is the fixed key of the template catalog. It carries no
	// query parameter, so the catalog is shared by unrelated searches.
	TemplatesKey() string
}

// DefaultKeyer produces the unprefixed keys used by a single instance.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SearchKey returns "search-<query>-<source>-<num>".
func (DefaultKeyer) SearchKey(query, source string, num int) string {
	return join("search", query, source, strconv.Itoa(num))
}

// TrendingKey returns "trending-memes".
func (DefaultKeyer) TrendingKey() string {
	return "trending-memes"
}

// CategoryKey returns "category-<id>-<page>-<num>".
func (DefaultKeyer) CategoryKey(category string, page, num int) string {
	return join("category", category, strconv.Itoa(page), strconv.Itoa(num))
}

// TemplatesKey returns "imgflip-templates".
func (DefaultKeyer) TemplatesKey() string {
	return "imgflip-templates"
}

func join(parts ...string) string {
	return strings.Join(parts, "-")
}
