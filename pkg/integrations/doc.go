// Package integrations provides HTTP clients for third-party image search
// APIs.
//
// # Overview
//
// Each provider has its own subpackage:
//
//   - [serper]: Google Images via serper.dev
//   - [serpapi]: Google Images via SerpAPI
//   - [brave]: Brave Search images
//   - [tavily]: Tavily search with image results
//   - [giphy]: GIPHY GIF search
//   - [pixabay]: Pixabay image search
//   - [imgflip]: the Imgflip meme template catalog
//
// # Client Pattern
//
// All search clients follow a consistent pattern:
//
//	client := serper.NewClient(os.Getenv("SERPER_API_KEY"))
//	results, err := client.Search(ctx, "distracted boyfriend", 10)
//
// A client built without a credential reports Configured() == false and
// its Search returns no results and no error. Missing configuration is an
// opt-out, not a failure.
//
// Every client decodes into tolerant response structs: missing or
// mistyped fields fall back to the defaults of [meme.Normalize] instead of
// failing the whole response. Only transport failures, non-2xx answers and
// bodies that are not JSON at all are reported, as [errors.ProviderError].
//
// # Shared Infrastructure
//
// The [Client] type provides the shared resty-based HTTP plumbing used by
// every provider client, including response caching via [cache.Cache] for
// the template catalog.
//
// # Adding a New Provider
//
//  1. Create a subpackage: pkg/integrations/<provider>/
//  2. Define response structs matching the API schema
//  3. Implement a Client with Name, Configured and Search methods
//  4. Use [NewClient] for HTTP
//  5. Register it in [providers]
//
// [serper]: github.com/matzehuels/memelab/pkg/integrations/serper
// [serpapi]: github.com/matzehuels/memelab/pkg/integrations/serpapi
// [brave]: github.com/matzehuels/memelab/pkg/integrations/brave
// [tavily]: github.com/matzehuels/memelab/pkg/integrations/tavily
// [giphy]: github.com/matzehuels/memelab/pkg/integrations/giphy
// [pixabay]: github.com/matzehuels/memelab/pkg/integrations/pixabay
// [imgflip]: github.com/matzehuels/memelab/pkg/integrations/imgflip
// [meme.Normalize]: github.com/matzehuels/memelab/pkg/meme.Normalize
// [errors.ProviderError]: github.com/matzehuels/memelab/pkg/errors.ProviderError
// [cache.Cache]: github.com/matzehuels/memelab/pkg/cache.Cache
// [providers]: github.com/matzehuels/memelab/pkg/providers
package integrations
