package giphy

import (
	"context"
	"strconv"
	"time"

	"github.com/matzehuels/memelab/pkg/integrations"
	"github.com/matzehuels/memelab/pkg/meme"
)

// Name is the provider identifier.
const Name = "giphy"

// maxCount is the page limit of the public beta keys.
const maxCount = 50

// Client searches GIFs through the GIPHY API.
type Client struct {
	*integrations.Client
	apiKey  string
	baseURL string
	now     func() time.Time
}

// NewClient creates a GIPHY client. An empty apiKey yields an unconfigured
// client.
func NewClient(apiKey string) *Client {
	return &Client{
		Client:  integrations.NewClient(Name, nil, nil),
		apiKey:  apiKey,
		baseURL: "https://api.giphy.com",
		now:     time.Now,
	}
}

// Name returns the provider identifier.
func (c *Client) Name() string { return Name }

// Configured reports whether an API key is set.
func (c *Client) Configured() bool { return c.apiKey != "" }

// Search returns up to count GIFs for query.
func (c *Client) Search(ctx context.Context, query string, count int) ([]meme.Result, error) {
	if !c.Configured() {
		return nil, nil
	}

	params := map[string]string{
		"api_key": c.apiKey,
		"q":       integrations.WithMemeSuffix(query),
		"limit":   strconv.Itoa(min(max(count, 1), maxCount)),
		"rating":  "pg-13",
	}
	var data searchResponse
	if err := c.GetJSON(ctx, c.baseURL+"/v1/gifs/search", params, &data); err != nil {
		return nil, err
	}

	now := c.now()
	results := make([]meme.Result, 0, len(data.Data))
	for i, gif := range data.Data {
		if count > 0 && len(results) >= count {
			break
		}
		orig := gif.Images.Original
		if orig.URL == "" {
			continue
		}
		results = append(results, meme.Normalize(meme.Result{
			ID:        meme.NewID(Name, now, i),
			Name:      gif.Title.String(),
			URL:       orig.URL.String(),
			Width:     orig.Width.Int(),
			Height:    orig.Height.Int(),
			Source:    Name,
			SourceURL: gif.URL.String(),
			Thumbnail: gif.Images.FixedWidthSmall.URL.String(),
		}))
	}
	return results, nil
}

type rendition struct {
	URL    integrations.FlexString `json:"url"`
	Width  integrations.FlexInt    `json:"width"`
	Height integrations.FlexInt    `json:"height"`
}

type searchResponse struct {
	Data []struct {
		Title  integrations.FlexString `json:"title"`
		URL    integrations.FlexString `json:"url"`
		Images struct {
			Original        rendition `json:"original"`
			FixedWidthSmall rendition `json:"fixed_width_small"`
		} `json:"images"`
	} `json:"data"`
}
