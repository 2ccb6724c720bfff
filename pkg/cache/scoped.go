package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments can
// share one Redis database without seeing each other's entries.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "memelab:")
//	keyer.TrendingKey() // "memelab:trending-memes"
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SearchKey generates a prefixed search key.
func (k *ScopedKeyer) SearchKey(query, source string, num int) string {
	return k.prefix + k.inner.SearchKey(query, source, num)
}

// TrendingKey generates the prefixed trending key.
func (k *ScopedKeyer) TrendingKey() string {
	return k.prefix + k.inner.TrendingKey()
}

// CategoryKey generates a prefixed category key.
func (k *ScopedKeyer) CategoryKey(category string, page, num int) string {
	return k.prefix + k.inner.CategoryKey(category, page, num)
}

// TemplatesKey generates the prefixed catalog key.
func (k *ScopedKeyer) TemplatesKey() string {
	return k.prefix + k.inner.TemplatesKey()
}
