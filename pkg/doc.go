// Package pkg provides the core libraries of memelab, a meme image search
// aggregator.
//
// # Overview
//
// Memelab sends one query to many third-party image search providers at
// once, normalizes their responses into one schema, drops duplicate images
// and serves the merged list from a short-lived cache. The pkg directory is
// organized as follows:
//
//  1. [meme] - The result schema, per-source status and deduplication
//  2. [integrations] - One client per search provider plus the Imgflip catalog
//  3. [providers] - The registry mapping source ids to clients, in tiers
//  4. [aggregate] - Concurrent fan-out with failure isolation
//  5. [cache] - TTL cache with first-in-first-out eviction (memory or Redis)
//  6. [pipeline] - Cached request flow shared by the server and the CLI
//
// # Architecture
//
//	request
//	   ↓
//	[pipeline] cache lookup ──hit──→ response (cached: true)
//	   ↓ miss
//	[aggregate] fan out to [providers] concurrently
//	   ↓
//	[meme] Dedupe, then store in [cache]
//	   ↓
//	response
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/memelab/pkg/cache"
//	    "github.com/matzehuels/memelab/pkg/pipeline"
//	    "github.com/matzehuels/memelab/pkg/providers"
//	)
//
//	backend := cache.NewMemoryCache()
//	registry := providers.New(providers.Credentials{Serper: key}, backend, nil)
//	runner := pipeline.NewRunner(backend, nil, registry, nil)
//
//	res, err := runner.Search(ctx, pipeline.SearchOptions{
//	    Query:  "distracted boyfriend",
//	    Source: pipeline.SourceAll,
//	    Num:    pipeline.DefaultNum,
//	})
//
// [meme]: https://pkg.go.dev/github.com/matzehuels/memelab/pkg/meme
// [integrations]: https://pkg.go.dev/github.com/matzehuels/memelab/pkg/integrations
// [providers]: https://pkg.go.dev/github.com/matzehuels/memelab/pkg/providers
// [aggregate]: https://pkg.go.dev/github.com/matzehuels/memelab/pkg/aggregate
// [cache]: https://pkg.go.dev/github.com/matzehuels/memelab/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/memelab/pkg/pipeline
package pkg
