// Package serper provides an HTTP client for the Serper Google Images API.
//
// # Overview
//
// Serper (https://serper.dev) proxies Google Images. It is one of the two
// primary providers and usually returns the most relevant meme images with
// real dimensions and a link to the containing page.
//
// # Usage
//
//	client := serper.NewClient(os.Getenv("SERPER_API_KEY"))
//	results, err := client.Search(ctx, "distracted boyfriend", 10)
//
// Without a key the client is unconfigured and Search returns nothing.
package serper
