// Package category holds the static table of canned category searches.
//
// The table is embedded from categories.yaml and parsed once. Lookups are
// by id; the listing keeps file order.
package category

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/memelab/pkg/errors"
	"github.com/matzehuels/memelab/pkg/meme"
)

//go:embed categories.yaml
var categoriesYAML []byte

var (
	loadOnce sync.Once
	all      []meme.Category
	byID     map[string]meme.Category
	loadErr  error
)

func load() {
	all, loadErr = Parse(categoriesYAML)
	byID = make(map[string]meme.Category, len(all))
	for _, c := range all {
		byID[c.ID] = c
	}
}

// Parse decodes a category table. Entries need an id and a query; ids must
// be unique. Missing names are derived with [DisplayName].
func Parse(data []byte) ([]meme.Category, error) {
	var cats []meme.Category
	if err := yaml.Unmarshal(data, &cats); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}
	seen := make(map[string]bool, len(cats))
	for i := range cats {
		c := &cats[i]
		if c.ID == "" || c.Query == "" {
			return nil, fmt.Errorf("parse categories: entry %d needs id and query", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("parse categories: duplicate id %q", c.ID)
		}
		seen[c.ID] = true
		if c.Name == "" {
			c.Name = DisplayName(c.ID)
		}
	}
	return cats, nil
}

// All returns every category in table order.
func All() []meme.Category {
	loadOnce.Do(load)
	out := make([]meme.Category, len(all))
	copy(out, all)
	return out
}

// Lookup returns the category with the given id.
func Lookup(id string) (meme.Category, bool) {
	loadOnce.Do(load)
	c, ok := byID[id]
	return c, ok
}

// Resolve is like Lookup but reports an unknown id as an
// [errors.ErrCodeInvalidCategory] error.
func Resolve(id string) (meme.Category, error) {
	c, ok := Lookup(id)
	if !ok {
		return meme.Category{}, errors.New(errors.ErrCodeInvalidCategory, "Invalid category")
	}
	return c, nil
}

// Err reports a malformed embedded table.
func Err() error {
	loadOnce.Do(load)
	return loadErr
}

// DisplayName turns a category id into a title: words split on "-" with
// their first letter upper-cased.
func DisplayName(id string) string {
	words := strings.Split(id, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
