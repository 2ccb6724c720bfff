package imgflip

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/matzehuels/memelab/pkg/cache"
	memeerrors "github.com/matzehuels/memelab/pkg/errors"
	"github.com/matzehuels/memelab/pkg/meme"
)

const catalog = `{"success":true,"data":{"memes":[
	{"id":"181913649","name":"Drake Hotline Bling","url":"https://i.imgflip.com/30b1gx.jpg","width":1200,"height":1200,"box_count":2},
	{"id":"112126428","name":"Distracted Boyfriend","url":"https://i.imgflip.com/1ur9b0.jpg","width":1200,"height":800,"box_count":3},
	{"id":"4087833","name":"Waiting Skeleton","url":"https://i.imgflip.com/2fm6x.jpg","width":"298","height":"","box_count":2},
	{"id":"1","name":"no url"}
]}}`

func testClient(t *testing.T, body string) (*Client, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get_memes" {
			t.Errorf("path = %q", r.URL.Path)
		}
		calls.Add(1)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	c := NewClient(cache.NewMemoryCache(), cache.NewDefaultKeyer())
	c.baseURL = server.URL
	return c, &calls
}

func TestClient_Templates(t *testing.T) {
	c, calls := testClient(t, catalog)

	templates, cached, err := c.Templates(context.Background())
	if err != nil {
		t.Fatalf("Templates failed: %v", err)
	}
	if cached {
		t.Error("first call should not be cached")
	}
	if len(templates) != 3 {
		t.Fatalf("expected 3 templates, got %d", len(templates))
	}

	want := meme.Template{
		ID:        "181913649",
		Name:      "Drake Hotline Bling",
		URL:       "https://i.imgflip.com/30b1gx.jpg",
		Width:     1200,
		Height:    1200,
		BoxCount:  2,
		Source:    "imgflip",
		Thumbnail: "https://i.imgflip.com/30b1gx.jpg",
	}
	if templates[0] != want {
		t.Errorf("templates[0] = %+v, want %+v", templates[0], want)
	}
	if tpl := templates[2]; tpl.Width != 298 || tpl.Height != 500 {
		t.Errorf("dimensions = %dx%d, want 298x500", tpl.Width, tpl.Height)
	}

	again, cached, err := c.Templates(context.Background())
	if err != nil {
		t.Fatalf("Templates failed: %v", err)
	}
	if !cached {
		t.Error("second call should be served from cache")
	}
	if len(again) != 3 {
		t.Errorf("cached catalog has %d templates", len(again))
	}
	if calls.Load() != 1 {
		t.Errorf("API called %d times, want 1", calls.Load())
	}
}

func TestClient_SharedAcrossSearches(t *testing.T) {
	c, calls := testClient(t, catalog)
	ctx := context.Background()

	for _, q := range []string{"drake", "boyfriend", "skeleton"} {
		if _, err := c.Search(ctx, q, 5); err != nil {
			t.Fatalf("Search(%q) failed: %v", q, err)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("API called %d times, want 1", calls.Load())
	}
}

func TestClient_Search(t *testing.T) {
	c, _ := testClient(t, catalog)

	results, err := c.Search(context.Background(), "  BOYFRIEND ", 5)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.ID != "imgflip-112126428" || r.Source != "imgflip" || r.Thumbnail != r.URL {
		t.Errorf("result = %+v", r)
	}

	results, _ = c.Search(context.Background(), "i", 2)
	if len(results) != 2 {
		t.Errorf("limit not applied, got %d results", len(results))
	}

	results, _ = c.Search(context.Background(), "   ", 5)
	if results != nil {
		t.Errorf("blank query should match nothing, got %d", len(results))
	}
}

func TestClient_Templates_Failure(t *testing.T) {
	c, _ := testClient(t, `{"success":false,"error_message":"down for maintenance"}`)

	_, _, err := c.Templates(context.Background())
	var pe *memeerrors.ProviderError
	if !errors.As(err, &pe) || pe.Provider != "imgflip" {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if err.Error() != "imgflip API error: unexpected status: down for maintenance" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestClient_Templates_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	backend := cache.NewMemoryCache()
	c := NewClient(backend, nil)
	c.baseURL = server.URL

	if _, _, err := c.Templates(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if n, _ := backend.Len(context.Background()); n != 0 {
		t.Error("failures must not be cached")
	}
}

func TestClient_Configured(t *testing.T) {
	c := NewClient(nil, nil)
	if !c.Configured() || c.Name() != "imgflip" {
		t.Errorf("Configured() = %v, Name() = %q", c.Configured(), c.Name())
	}
}
