// Package giphy provides an HTTP client for the GIPHY GIF search API.
//
// GIPHY encodes rendition dimensions as strings ("480"); they are parsed
// leniently and fall back to the defaults when unparsable.
package giphy
