// Package serpapi provides an HTTP client for the SerpAPI Google Images
// engine.
//
// # Response Shapes
//
// SerpAPI has changed its image payload over time. The client accepts both
// variants it has been seen to return:
//
//   - results under "images_results" or under "results"
//   - "original" as a plain URL string or as an object
//     {"link", "width", "height"}
//
// Width and height are read from the original object when present and from
// the flat original_width/original_height fields otherwise.
package serpapi
