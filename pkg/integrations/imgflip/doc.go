// Package imgflip provides an HTTP client for the Imgflip meme template
// catalog.
//
// # Overview
//
// Imgflip's get_memes endpoint returns the ~100 most popular meme
// templates. The list changes rarely and takes no query, so it is cached
// under a single fixed key and shared by every search that folds catalog
// matches into its results.
//
// # Usage
//
//	client := imgflip.NewClient(cache.NewMemoryCache(), cache.NewDefaultKeyer())
//	templates, cached, err := client.Templates(ctx)
//
// Search filters the catalog locally by case-insensitive substring match on
// the template name; the query is never sent upstream.
//
// The catalog needs no credential, so the client is always configured.
package imgflip
