package serper

import (
	"context"
	"time"

	"github.com/matzehuels/memelab/pkg/integrations"
	"github.com/matzehuels/memelab/pkg/meme"
)

// Name is the provider identifier.
const Name = "serper"

// Client searches Google Images through serper.dev.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	apiKey  string
	baseURL string
	now     func() time.Time
}

// NewClient creates a Serper client. An empty apiKey yields an unconfigured
// client.
func NewClient(apiKey string) *Client {
	return &Client{
		Client:  integrations.NewClient(Name, nil, map[string]string{"X-API-KEY": apiKey}),
		apiKey:  apiKey,
		baseURL: "https://google.serper.dev",
		now:     time.Now,
	}
}

// Name returns the provider identifier.
func (c *Client) Name() string { return Name }

// Configured reports whether an API key is set.
func (c *Client) Configured() bool { return c.apiKey != "" }

// Search returns up to count images for query. The " meme" suffix is
// appended before dispatch. Images without a URL are skipped.
func (c *Client) Search(ctx context.Context, query string, count int) ([]meme.Result, error) {
	if !c.Configured() {
		return nil, nil
	}

	body := searchRequest{
		Q:   integrations.WithMemeSuffix(query),
		Num: count,
		GL:  "us",
	}
	var data searchResponse
	if err := c.PostJSON(ctx, c.baseURL+"/images", body, &data); err != nil {
		return nil, err
	}

	now := c.now()
	results := make([]meme.Result, 0, len(data.Images))
	for i, img := range data.Images {
		if count > 0 && len(results) >= count {
			break
		}
		if img.ImageURL == "" {
			continue
		}
		results = append(results, meme.Normalize(meme.Result{
			ID:        meme.NewID(Name, now, i),
			Name:      img.Title.String(),
			URL:       img.ImageURL.String(),
			Width:     img.ImageWidth.Int(),
			Height:    img.ImageHeight.Int(),
			Source:    Name,
			SourceURL: img.Link.String(),
			Thumbnail: img.ThumbnailURL.String(),
		}))
	}
	return results, nil
}

type searchRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
	GL  string `json:"gl"`
}

type searchResponse struct {
	Images []struct {
		Title        integrations.FlexString `json:"title"`
		ImageURL     integrations.FlexString `json:"imageUrl"`
		ImageWidth   integrations.FlexInt    `json:"imageWidth"`
		ImageHeight  integrations.FlexInt    `json:"imageHeight"`
		ThumbnailURL integrations.FlexString `json:"thumbnailUrl"`
		Link         integrations.FlexString `json:"link"`
	} `json:"images"`
}
