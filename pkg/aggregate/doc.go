// Package aggregate fans a query out to several search providers at once
// and merges what comes back.
//
// # Contract
//
// [Aggregator.Aggregate] never fails. Every provider call runs in its own
// goroutine and its outcome (results or error, including a recovered panic)
// is captured as a value, so one provider can neither abort nor delay the
// others beyond its own duration. The call waits for all providers to
// settle; there is no first-success short-circuit and no aggregation-level
// deadline.
//
// # Budget
//
// The requested total is split evenly: each invoked provider is asked for
// ceil(total / N) results, N being the number of providers actually
// invoked. There is no rebalancing when a provider returns fewer.
//
// # Ordering
//
// Results are concatenated in the iteration order of the active set (tier
// order by default), not in completion order, and then deduplicated by URL
// with [meme.Dedupe].
//
// # Status
//
// Each requested identifier gets a [meme.Status]:
//
//	success      at least one result
//	empty        no results, no error
//	error        the call failed or panicked
//	unavailable  unknown identifier or credential not configured (not invoked)
package aggregate
