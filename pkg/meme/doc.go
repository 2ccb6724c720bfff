// Package meme defines the common result schema shared by every search
// provider, together with the cross-provider deduplication policy.
//
// # Results
//
// Providers answer in very different shapes. Each adapter in
// [github.com/matzehuels/memelab/pkg/integrations] maps its backend response
// into a [Result]; missing fields degrade to the documented fallbacks
// ([DefaultDimension], [DefaultName], thumbnail = url) instead of failing.
//
// # Deduplication
//
// [Dedupe] collapses a sequence of results so that no two entries share the
// same non-empty URL. The first occurrence wins and order is preserved:
//
//	merged := append(serperResults, tavilyResults...)
//	unique := meme.Dedupe(merged)
//
// # Status
//
// Every aggregation call reports a [SourceStatus] describing how each
// requested provider fared ([StatusSuccess], [StatusEmpty], [StatusError],
// [StatusUnavailable]).
package meme
