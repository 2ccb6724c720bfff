package meme

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultDimension is used for width and height when a provider omits them.
	DefaultDimension = 500

	// DefaultName is the placeholder title for results without one.
	DefaultName = "Meme"

	// SourceCatalog identifies the template catalog provider.
	SourceCatalog = "imgflip"
)

// Result is the normalized form of a single image search hit.
//
// URL is the deduplication key. A Result with an empty URL is considered
// invalid and is dropped by [Dedupe].
type Result struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Source    string `json:"source"`
	SourceURL string `json:"sourceUrl"`
	Thumbnail string `json:"thumbnail"`
}

// Template is an entry of the meme template catalog.
type Template struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	BoxCount  int    `json:"box_count"`
	Source    string `json:"source"`
	Thumbnail string `json:"thumbnail"`
}

// Result converts a catalog template into a search result.
func (t Template) Result() Result {
	return Normalize(Result{
		ID:        SourceCatalog + "-" + t.ID,
		Name:      t.Name,
		URL:       t.URL,
		Width:     t.Width,
		Height:    t.Height,
		Source:    SourceCatalog,
		Thumbnail: t.Thumbnail,
	})
}

// MatchTemplates returns up to limit templates whose name contains query,
// compared case-insensitively. A non-positive limit means no limit.
func MatchTemplates(templates []Template, query string, limit int) []Template {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Template
	for _, t := range templates {
		if limit > 0 && len(out) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(t.Name), q) {
			out = append(out, t)
		}
	}
	return out
}

// Normalize applies the field fallbacks of the common schema to r.
func Normalize(r Result) Result {
	if r.Name == "" {
		r.Name = DefaultName
	}
	if r.Width <= 0 {
		r.Width = DefaultDimension
	}
	if r.Height <= 0 {
		r.Height = DefaultDimension
	}
	if r.Thumbnail == "" {
		r.Thumbnail = r.URL
	}
	return r
}

// NewID builds a result identifier from the provider tag, the current time
// and the ordinal of the result within the provider response. IDs are
// unique within a call but not stable across calls.
func NewID(source string, at time.Time, ordinal int) string {
	return fmt.Sprintf("%s-%d-%d", source, at.UnixMilli(), ordinal)
}

// Category is a canned search topic.
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Query string `json:"query" yaml:"query"`
}
