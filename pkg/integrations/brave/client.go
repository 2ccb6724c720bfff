package brave

import (
	"context"
	"strconv"
	"time"

	"github.com/matzehuels/memelab/pkg/integrations"
	"github.com/matzehuels/memelab/pkg/meme"
)

// Name is the provider identifier.
const Name = "brave"

// maxCount is the largest page Brave accepts.
const maxCount = 100

// Client searches images through the Brave Search API.
type Client struct {
	*integrations.Client
	apiKey  string
	baseURL string
	now     func() time.Time
}

// NewClient creates a Brave client. An empty apiKey yields an unconfigured
// client.
func NewClient(apiKey string) *Client {
	return &Client{
		Client:  integrations.NewClient(Name, nil, map[string]string{"X-Subscription-Token": apiKey}),
		apiKey:  apiKey,
		baseURL: "https://api.search.brave.com",
		now:     time.Now,
	}
}

// Name returns the provider identifier.
func (c *Client) Name() string { return Name }

// Configured reports whether an API key is set.
func (c *Client) Configured() bool { return c.apiKey != "" }

// Search returns up to count images for query.
func (c *Client) Search(ctx context.Context, query string, count int) ([]meme.Result, error) {
	if !c.Configured() {
		return nil, nil
	}

	params := map[string]string{
		"q":     integrations.WithMemeSuffix(query),
		"count": strconv.Itoa(min(max(count, 1), maxCount)),
	}
	var data searchResponse
	if err := c.GetJSON(ctx, c.baseURL+"/res/v1/images/search", params, &data); err != nil {
		return nil, err
	}

	now := c.now()
	results := make([]meme.Result, 0, len(data.Results))
	for i, img := range data.Results {
		if count > 0 && len(results) >= count {
			break
		}
		url := img.Properties.URL.String()
		if url == "" {
			continue
		}
		results = append(results, meme.Normalize(meme.Result{
			ID:        meme.NewID(Name, now, i),
			Name:      img.Title.String(),
			URL:       url,
			Width:     img.Properties.Width.Int(),
			Height:    img.Properties.Height.Int(),
			Source:    Name,
			SourceURL: img.URL.String(),
			Thumbnail: img.Thumbnail.Src.String(),
		}))
	}
	return results, nil
}

type searchResponse struct {
	Results []struct {
		Title     integrations.FlexString `json:"title"`
		URL       integrations.FlexString `json:"url"`
		Thumbnail struct {
			Src integrations.FlexString `json:"src"`
		} `json:"thumbnail"`
		Properties struct {
			URL    integrations.FlexString `json:"url"`
			Width  integrations.FlexInt    `json:"width"`
			Height integrations.FlexInt    `json:"height"`
		} `json:"properties"`
	} `json:"results"`
}
