package pixabay

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/memelab/pkg/integrations"
	"github.com/matzehuels/memelab/pkg/meme"
)

// Name is the provider identifier.
const Name = "pixabay"

// Pixabay rejects per_page outside [3, 200] and queries over 100 characters.
const (
	minCount    = 3
	maxCount    = 200
	maxQueryLen = 100
)

// Client searches images through the Pixabay API.
type Client struct {
	*integrations.Client
	apiKey  string
	baseURL string
	now     func() time.Time
}

// NewClient creates a Pixabay client. An empty apiKey yields an
// unconfigured client.
func NewClient(apiKey string) *Client {
	return &Client{
		Client:  integrations.NewClient(Name, nil, nil),
		apiKey:  apiKey,
		baseURL: "https://pixabay.com",
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

	q := integrations.WithMemeSuffix(query)
	if len(q) > maxQueryLen {
		q = q[:maxQueryLen]
	}
	params := map[string]string{
		"key":        c.apiKey,
		"q":          q,
		"per_page":   strconv.Itoa(min(max(count, minCount), maxCount)),
		"safesearch": "true",
	}
	var data searchResponse
	if err := c.GetJSON(ctx, c.baseURL+"/api/", params, &data); err != nil {
		return nil, err
	}

	now := c.now()
	results := make([]meme.Result, 0, len(data.Hits))
	for i, hit := range data.Hits {
		if count > 0 && len(results) >= count {
			break
		}
		url := integrations.FirstNonEmpty(hit.LargeImageURL.String(), hit.WebformatURL.String())
		if url == "" {
			continue
		}
		results = append(results, meme.Normalize(meme.Result{
			ID:        meme.NewID(Name, now, i),
			Name:      title(hit.Tags.String()),
			URL:       url,
			Width:     hit.ImageWidth.Int(),
			Height:    hit.ImageHeight.Int(),
			Source:    Name,
			SourceURL: hit.PageURL.String(),
			Thumbnail: integrations.FirstNonEmpty(hit.PreviewURL.String(), hit.WebformatURL.String()),
		}))
	}
	return results, nil
}

// title turns the comma separated tag list into a display name.
func title(tags string) string {
	first, _, _ := strings.Cut(tags, ",")
	return strings.TrimSpace(first)
}

type searchResponse struct {
	Hits []struct {
		Tags          integrations.FlexString `json:"tags"`
		LargeImageURL integrations.FlexString `json:"largeImageURL"`
		WebformatURL  integrations.FlexString `json:"webformatURL"`
		PreviewURL    integrations.FlexString `json:"previewURL"`
		PageURL       integrations.FlexString `json:"pageURL"`
		ImageWidth    integrations.FlexInt    `json:"imageWidth"`
		ImageHeight   integrations.FlexInt    `json:"imageHeight"`
	} `json:"hits"`
}
