package imgflip

import (
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/memelab/pkg/cache"
	"github.com/matzehuels/memelab/pkg/errors"
	"github.com/matzehuels/memelab/pkg/integrations"
	"github.com/matzehuels/memelab/pkg/meme"
)

// Name is the provider identifier.
const Name = meme.SourceCatalog

// Client fetches and filters the Imgflip template catalog.
type Client struct {
	*integrations.Client
	keyer   cache.Keyer
	baseURL string
}

// NewClient creates a catalog client that caches the template list in
// backend under keyer.TemplatesKey().
func NewClient(backend cache.Cache, keyer cache.Keyer) *Client {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	return &Client{
		Client:  integrations.NewClient(Name, backend, nil),
		keyer:   keyer,
		baseURL: "https://api.imgflip.com",
	}
}

// Name returns the provider identifier.
func (c *Client) Name() string { return Name }

// Configured is always true; the catalog needs no credential.
func (c *Client) Configured() bool { return true }

// Templates returns the full catalog. The boolean reports whether it was
// served from the cache.
func (c *Client) Templates(ctx context.Context) ([]meme.Template, bool, error) {
	var templates []meme.Template
	cached, err := c.Cached(ctx, c.keyer.TemplatesKey(), &templates, func() error {
		return c.fetch(ctx, &templates)
	})
	if err != nil {
		return nil, false, err
	}
	return templates, cached, nil
}

// Match returns up to limit templates whose name contains query.
func (c *Client) Match(ctx context.Context, query string, limit int) ([]meme.Template, error) {
	templates, _, err := c.Templates(ctx)
	if err != nil {
		return nil, err
	}
	return meme.MatchTemplates(templates, query, limit), nil
}

// Search returns up to count catalog matches for query as results.
func (c *Client) Search(ctx context.Context, query string, count int) ([]meme.Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	matches, err := c.Match(ctx, query, count)
	if err != nil {
		return nil, err
	}
	results := make([]meme.Result, 0, len(matches))
	for _, t := range matches {
		results = append(results, t.Result())
	}
	return results, nil
}

func (c *Client) fetch(ctx context.Context, out *[]meme.Template) error {
	var data memesResponse
	if err := c.GetJSON(ctx, c.baseURL+"/get_memes", nil, &data); err != nil {
		return err
	}
	if !data.Success {
		return &errors.ProviderError{
			Provider: Name,
			Err:      fmt.Errorf("%w: %s", integrations.ErrStatus, integrations.FirstNonEmpty(data.ErrorMessage.String(), "success=false")),
		}
	}

	templates := make([]meme.Template, 0, len(data.Data.Memes))
	for _, m := range data.Data.Memes {
		if m.URL == "" {
			continue
		}
		templates = append(templates, meme.Template{
			ID:        m.ID.String(),
			Name:      integrations.FirstNonEmpty(m.Name.String(), meme.DefaultName),
			URL:       m.URL.String(),
			Width:     positiveOr(m.Width.Int(), meme.DefaultDimension),
			Height:    positiveOr(m.Height.Int(), meme.DefaultDimension),
			BoxCount:  m.BoxCount.Int(),
			Source:    Name,
			Thumbnail: m.URL.String(),
		})
	}
	*out = templates
	return nil
}

func positiveOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

type memesResponse struct {
	Success      bool                    `json:"success"`
	ErrorMessage integrations.FlexString `json:"error_message"`
	Data         struct {
		Memes []struct {
			ID       integrations.FlexString `json:"id"`
			Name     integrations.FlexString `json:"name"`
			URL      integrations.FlexString `json:"url"`
			Width    integrations.FlexInt    `json:"width"`
			Height   integrations.FlexInt    `json:"height"`
			BoxCount integrations.FlexInt    `json:"box_count"`
		} `json:"memes"`
	} `json:"data"`
}
