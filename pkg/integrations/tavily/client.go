package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/matzehuels/memelab/pkg/integrations"
	"github.com/matzehuels/memelab/pkg/meme"
)

// Name is the provider identifier.
const Name = "tavily"

const (
	// Timeout is the hard deadline applied to every Tavily call.
	Timeout = 45 * time.Second

	querySuffix = " meme images"
)

// Client searches images through the Tavily API.
type Client struct {
	*integrations.Client
	apiKey  string
	baseURL string
	timeout time.Duration
	now     func() time.Time
}

// NewClient creates a Tavily client. An empty apiKey yields an
// unconfigured client.
func NewClient(apiKey string) *Client {
	return &Client{
		Client:  integrations.NewClient(Name, nil, nil),
		apiKey:  apiKey,
		baseURL: "https://api.tavily.com",
		timeout: Timeout,
		now:     time.Now,
	}
}

// Name returns the provider identifier.
func (c *Client) Name() string { return Name }

// Configured reports whether an API key is set.
func (c *Client) Configured() bool { return c.apiKey != "" }

// Search returns up to count image URLs for query.
func (c *Client) Search(ctx context.Context, query string, count int) ([]meme.Result, error) {
	if !c.Configured() {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body := searchRequest{
		APIKey:        c.apiKey,
		Query:         query + querySuffix,
		SearchDepth:   "basic",
		IncludeImages: true,
		MaxResults:    count,
	}
	var data searchResponse
	if err := c.PostJSON(ctx, c.baseURL+"/search", body, &data); err != nil {
		return nil, err
	}

	now := c.now()
	results := make([]meme.Result, 0, len(data.Images))
	for i, img := range data.Images {
		if count > 0 && len(results) >= count {
			break
		}
		if img.URL == "" {
			continue
		}
		results = append(results, meme.Normalize(meme.Result{
			ID:     meme.NewID(Name, now, i),
			Name:   fmt.Sprintf("%s %d", meme.DefaultName, i+1),
			URL:    img.URL,
			Source: Name,
		}))
	}
	return results, nil
}

type searchRequest struct {
	APIKey        string `json:"api_key"`
	Query         string `json:"query"`
	SearchDepth   string `json:"search_depth"`
	IncludeImages bool   `json:"include_images"`
	MaxResults    int    `json:"max_results"`
}

type searchResponse struct {
	Images []image `json:"images"`
}

// image is either a URL string or {"url", "description"}.
type image struct {
	URL         string
	Description string
}

func (img *image) UnmarshalJSON(data []byte) error {
	*img = image{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if json.Unmarshal(data, &s) == nil {
			img.URL = s
		}
	case '{':
		var obj struct {
			URL         integrations.FlexString `json:"url"`
			Description integrations.FlexString `json:"description"`
		}
		if json.Unmarshal(data, &obj) == nil {
			img.URL = obj.URL.String()
			img.Description = obj.Description.String()
		}
	}
	return nil
}
