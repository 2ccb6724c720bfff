// Package tavily provides an HTTP client for the Tavily search API with
// image results enabled.
//
// Tavily returns bare image URLs (or {"url", "description"} objects when
// image descriptions are enabled) without titles or dimensions, so results
// are named "Meme 1", "Meme 2", ... and use the default dimensions.
//
// Tavily searches are slow; every call runs under its own 45 second
// deadline in addition to the caller's context.
package tavily
