// Package brave provides an HTTP client for the Brave Search image API.
//
// The image URL lives under properties.url; the top-level url is the page
// that contains the image.
package brave
