package providers

import (
	"fmt"
	"slices"

	"github.com/matzehuels/memelab/pkg/cache"
	"github.com/matzehuels/memelab/pkg/integrations/brave"
	"github.com/matzehuels/memelab/pkg/integrations/giphy"
	"github.com/matzehuels/memelab/pkg/integrations/imgflip"
	"github.com/matzehuels/memelab/pkg/integrations/pixabay"
	"github.com/matzehuels/memelab/pkg/integrations/serpapi"
	"github.com/matzehuels/memelab/pkg/integrations/serper"
	"github.com/matzehuels/memelab/pkg/integrations/tavily"
)

// Tier is a provider priority group.
type Tier int

const (
	Primary Tier = iota
	Secondary
	Tertiary

	numTiers
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Tertiary:
		return "tertiary"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Credentials holds one API key per search provider. An empty key disables
// that provider.
type Credentials struct {
	Serper  string
	SerpAPI string
	Brave   string
	Tavily  string
	Giphy   string
	Pixabay string
}

// Registry maps source identifiers to providers.
//
// A Registry is built once at startup and is read-only afterwards, so it
// is safe for concurrent use.
type Registry struct {
	providers map[string]Provider
	tiers     [numTiers][]string
	catalog   Catalog
}

// NewRegistry creates an empty registry with the given catalog. catalog may
// be nil.
func NewRegistry(catalog Catalog) *Registry {
	return &Registry{
		providers: make(map[string]Provider),
		catalog:   catalog,
	}
}

// New builds the standard registry: every search provider registered in
// its tier whether or not its credential is set, plus the Imgflip catalog
// cached in backend.
func New(creds Credentials, backend cache.Cache, keyer cache.Keyer) *Registry {
	r := NewRegistry(imgflip.NewClient(backend, keyer))
	r.MustRegister(Primary, serper.NewClient(creds.Serper))
	r.MustRegister(Primary, serpapi.NewClient(creds.SerpAPI))
	r.MustRegister(Secondary, brave.NewClient(creds.Brave))
	r.MustRegister(Secondary, tavily.NewClient(creds.Tavily))
	r.MustRegister(Tertiary, giphy.NewClient(creds.Giphy))
	r.MustRegister(Tertiary, pixabay.NewClient(creds.Pixabay))
	return r
}

// Register adds p to tier. Registering a name twice is an error.
func (r *Registry) Register(tier Tier, p Provider) error {
	if tier < 0 || tier >= numTiers {
		return fmt.Errorf("register %s: invalid %s", p.Name(), tier)
	}
	name := p.Name()
	if _, ok := r.providers[name]; ok {
		return fmt.Errorf("register %s: already registered", name)
	}
	if r.catalog != nil && name == r.catalog.Name() {
		return fmt.Errorf("register %s: name taken by the catalog", name)
	}
	r.providers[name] = p
	r.tiers[tier] = append(r.tiers[tier], name)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(tier Tier, p Provider) {
	if err := r.Register(tier, p); err != nil {
		panic(err)
	}
}

// Get returns the provider registered under name.
func (r *Registry) Get(name string) (Provider, bool) {
	p, ok := r.providers[name]
	return p, ok
}

// Catalog returns the template catalog, or nil if none was set.
func (r *Registry) Catalog() Catalog {
	return r.catalog
}

// Tier returns the names registered in t, in registration order.
func (r *Registry) Tier(t Tier) []string {
	if t < 0 || t >= numTiers {
		return nil
	}
	return slices.Clone(r.tiers[t])
}

// Default returns the union of all tiers: primary first, then secondary,
// then tertiary. This is the active set of an aggregation that names no
// sources.
func (r *Registry) Default() []string {
	var names []string
	for _, tier := range r.tiers {
		names = append(names, tier...)
	}
	return names
}

// Configured returns the tiered providers whose credential is set, in
// Default order.
func (r *Registry) Configured() []string {
	var names []string
	for _, name := range r.Default() {
		if r.providers[name].Configured() {
			names = append(names, name)
		}
	}
	return names
}

// Sources lists the identifiers a caller can currently use: the configured
// search providers followed by the catalog, which needs no credential.
func (r *Registry) Sources() []string {
	names := r.Configured()
	if r.catalog != nil {
		names = append(names, r.catalog.Name())
	}
	return names
}

// Known reports whether name is a registered provider or the catalog.
func (r *Registry) Known(name string) bool {
	if _, ok := r.providers[name]; ok {
		return true
	}
	return r.catalog != nil && r.catalog.Name() == name
}
