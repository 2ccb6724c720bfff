// Package pixabay provides an HTTP client for the Pixabay image search API.
package pixabay
