package meme

// Dedupe returns the results with unique, non-empty URLs in first-seen order.
// Later duplicates are dropped silently, regardless of which provider
// produced them. The input slice is not modified.
func Dedupe(results []Result) []Result {
	seen := make(map[string]struct{}, len(results))
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if r.URL == "" {
			continue
		}
		if _, ok := seen[r.URL]; ok {
			continue
		}
		seen[r.URL] = struct{}{}
		out = append(out, r)
	}
	return out
}
