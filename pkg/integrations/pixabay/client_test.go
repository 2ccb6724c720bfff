package pixabay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
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

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("key") != "test-key" || q.Get("q") != "cat meme" || q.Get("per_page") != "3" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{"total":2,"hits":[
			{"tags":"cat, funny, animal","largeImageURL":"https://img/1_large.jpg","webformatURL":"https://img/1_web.jpg",
			 "previewURL":"https://img/1_prev.jpg","pageURL":"https://pixabay.com/1","imageWidth":1920,"imageHeight":1280},
			{"tags":"","webformatURL":"https://img/2_web.jpg"},
			{"tags":"nothing"}
		]}`))
	}))
	defer server.Close()

	results, err := testClient(t, server.URL).Search(context.Background(), "cat", 1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result (capped), got %d", len(results))
	}
	r := results[0]
	if r.Name != "cat" || r.URL != "https://img/1_large.jpg" || r.Width != 1920 || r.Height != 1280 {
		t.Errorf("result = %+v", r)
	}
	if r.Thumbnail != "https://img/1_prev.jpg" || r.SourceURL != "https://pixabay.com/1" || r.Source != "pixabay" {
		t.Errorf("result = %+v", r)
	}

	results, err = testClient(t, server.URL).Search(context.Background(), "cat", 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	r = results[1]
	if r.Name != "Meme" || r.URL != "https://img/2_web.jpg" || r.Thumbnail != "https://img/2_web.jpg" || r.Width != 500 {
		t.Errorf("fallbacks not applied: %+v", r)
	}
}

func TestClient_Search_LongQuery(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("q")
		w.Write([]byte(`{"hits":[]}`))
	}))
	defer server.Close()

	if _, err := testClient(t, server.URL).Search(context.Background(), strings.Repeat("a", 150), 10); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 100 {
		t.Errorf("query length = %d, want 100", len(got))
	}
}

func TestClient_Search_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("[ERROR 400] Invalid API key"))
	}))
	defer server.Close()

	_, err := testClient(t, server.URL).Search(context.Background(), "cat", 5)
	var pe *memeerrors.ProviderError
	if !errors.As(err, &pe) || pe.Body != "[ERROR 400] Invalid API key" {
		t.Errorf("expected ProviderError with body, got %v", err)
	}
}

func TestClient_Search_Unconfigured(t *testing.T) {
	results, err := NewClient("").Search(context.Background(), "cat", 5)
	if err != nil || results != nil {
		t.Errorf("Search() = (%v, %v), want (nil, nil)", results, err)
	}
}
