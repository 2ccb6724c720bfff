package serpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/matzehuels/memelab/pkg/integrations"
	"github.com/matzehuels/memelab/pkg/meme"
)

// Name is the provider identifier.
const Name = "serpapi"

// Client searches Google Images through SerpAPI.
type Client struct {
	*integrations.Client
	apiKey  string
	baseURL string
	now     func() time.Time
}

// NewClient creates a SerpAPI client. An empty apiKey yields an
// unconfigured client.
func NewClient(apiKey string) *Client {
	return &Client{
		Client:  integrations.NewClient(Name, nil, nil),
		apiKey:  apiKey,
		baseURL: "https://serpapi.com",
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
		"engine":  "google_images",
		"q":       integrations.WithMemeSuffix(query),
		"num":     strconv.Itoa(count),
		"api_key": c.apiKey,
	}
	var data searchResponse
	if err := c.GetJSON(ctx, c.baseURL+"/search.json", params, &data); err != nil {
		return nil, err
	}

	items := data.ImagesResults
	if len(items) == 0 {
		items = data.Results
	}

	now := c.now()
	results := make([]meme.Result, 0, len(items))
	for i, img := range items {
		if count > 0 && len(results) >= count {
			break
		}
		url := integrations.FirstNonEmpty(img.Original.Link, img.Image.String())
		if url == "" {
			continue
		}
		results = append(results, meme.Normalize(meme.Result{
			ID:        meme.NewID(Name, now, i),
			Name:      img.Title.String(),
			URL:       url,
			Width:     firstPositive(img.Original.Width, img.OriginalWidth.Int()),
			Height:    firstPositive(img.Original.Height, img.OriginalHeight.Int()),
			Source:    Name,
			SourceURL: img.Link.String(),
			Thumbnail: img.Thumbnail.String(),
		}))
	}
	return results, nil
}

type searchResponse struct {
	ImagesResults []imageResult `json:"images_results"`
	Results       []imageResult `json:"results"`
}

type imageResult struct {
	Title          integrations.FlexString `json:"title"`
	Original       original                `json:"original"`
	Image          integrations.FlexString `json:"image"`
	OriginalWidth  integrations.FlexInt    `json:"original_width"`
	OriginalHeight integrations.FlexInt    `json:"original_height"`
	Thumbnail      integrations.FlexString `json:"thumbnail"`
	Link           integrations.FlexString `json:"link"`
}

// original is either a URL string or {"link", "width", "height"}.
type original struct {
	Link   string
	Width  int
	Height int
}

func (o *original) UnmarshalJSON(data []byte) error {
	*o = original{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if json.Unmarshal(data, &s) == nil {
			o.Link = s
		}
	case '{':
		var obj struct {
			Link   integrations.FlexString `json:"link"`
			Width  integrations.FlexInt    `json:"width"`
			Height integrations.FlexInt    `json:"height"`
		}
		if json.Unmarshal(data, &obj) == nil {
			o.Link = obj.Link.String()
			o.Width = obj.Width.Int()
			o.Height = obj.Height.Int()
		}
	}
	return nil
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
