package serpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	memeerrors "github.com/matzehuels/memelab/pkg/errors"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c := NewClient("test-key")
	c.baseURL = baseURL
	c.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return c
}

func serve(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/search.json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if q.Get("engine") != "google_images" || q.Get("api_key") != "test-key" || q.Get("q") != "cat meme" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClient_Search_ImagesResults(t *testing.T) {
	server := serve(t, `{"images_results":[
		{"title":"Cat","original":"https://img/1.jpg","original_width":800,"original_height":600,
		 "thumbnail":"https://thumb/1.jpg","link":"https://page/1"}
	]}`)

	results, err := testClient(t, server.URL).Search(context.Background(), "cat", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.URL != "https://img/1.jpg" || r.Width != 800 || r.Height != 600 {
		t.Errorf("result = %+v", r)
	}
	if r.Thumbnail != "https://thumb/1.jpg" || r.SourceURL != "https://page/1" || r.Source != "serpapi" {
		t.Errorf("result = %+v", r)
	}
	if r.ID != "serpapi-1700000000000-0" {
		t.Errorf("ID = %q", r.ID)
	}
}

func TestClient_Search_AlternateShape(t *testing.T) {
	server := serve(t, `{"results":[
		{"title":"Cat","original":{"link":"https://img/1.jpg","width":"1024","height":768}},
		{"original":{"link":""},"image":"https://img/2.jpg"},
		{"original":42}
	]}`)

	results, err := testClient(t, server.URL).Search(context.Background(), "cat", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if r := results[0]; r.URL != "https://img/1.jpg" || r.Width != 1024 || r.Height != 768 {
		t.Errorf("object original not decoded: %+v", r)
	}
	if r := results[1]; r.URL != "https://img/2.jpg" || r.Name != "Meme" || r.Width != 500 || r.Thumbnail != r.URL {
		t.Errorf("fallbacks not applied: %+v", r)
	}
}

func TestClient_Search_PrefersImagesResults(t *testing.T) {
	server := serve(t, `{"images_results":[{"original":"https://img/a.jpg"}],"results":[{"original":"https://img/b.jpg"}]}`)

	results, err := testClient(t, server.URL).Search(context.Background(), "cat", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].URL != "https://img/a.jpg" {
		t.Errorf("results = %+v", results)
	}
}

func TestClient_Search_CapsCount(t *testing.T) {
	server := serve(t, `{"images_results":[
		{"original":"https://img/1.jpg"},{"original":"https://img/2.jpg"},{"original":"https://img/3.jpg"}
	]}`)

	results, err := testClient(t, server.URL).Search(context.Background(), "cat", 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}

func TestClient_Search_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := testClient(t, server.URL).Search(context.Background(), "cat", 5)
	var pe *memeerrors.ProviderError
	if !errors.As(err, &pe) || pe.Status != http.StatusTooManyRequests {
		t.Errorf("expected 429 ProviderError, got %v", err)
	}
}

func TestClient_Search_Unconfigured(t *testing.T) {
	c := NewClient("")
	results, err := c.Search(context.Background(), "cat", 5)
	if err != nil || results != nil {
		t.Errorf("Search() = (%v, %v), want (nil, nil)", results, err)
	}
}
