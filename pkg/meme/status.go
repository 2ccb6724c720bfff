package meme

// Status is the outcome of one provider invocation within an aggregation.
type Status string

const (
	// StatusSuccess means the provider returned at least one result.
	StatusSuccess Status = "success"
	// StatusEmpty means the provider answered without error but with no results.
	StatusEmpty Status = "empty"
	// StatusError means the provider call failed.
	StatusError Status = "error"
	// StatusUnavailable means no adapter is registered for the identifier or
	// its credential is not configured.
	StatusUnavailable Status = "unavailable"
)

// SourceStatus maps provider identifiers to their outcome for one call.
type SourceStatus map[string]Status

// StatusFor derives the status of a completed provider call.
func StatusFor(n int, err error) Status {
	switch {
	case err != nil:
		return StatusError
	case n == 0:
		return StatusEmpty
	default:
		return StatusSuccess
	}
}

// Strings returns a copy of s with plain string values, suitable for JSON
// envelopes that should not depend on this package.
func (s SourceStatus) Strings() map[string]string {
	if s == nil {
		return nil
	}
	out := make(map[string]string, len(s))
	for k, v := range s {
		out[k] = string(v)
	}
	return out
}
