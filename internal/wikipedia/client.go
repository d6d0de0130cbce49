// Package wikipedia is a minimal client for the MediaWiki pageimages API,
// used by the image refresh command to resolve celebrity portraits.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL   = "https://en.wikipedia.org"
	defaultThumbSize = 400
)

// Thumbnail is one resolved page image. URL is empty when the page exists
// but carries no image.
type Thumbnail struct {
	URL    string
	Source string
}

// Client queries the English Wikipedia API. The zero value is not usable;
// construct with NewClient.
type Client struct {
	http    *http.Client
	baseURL string
}

// Option adjusts client construction.
type Option func(*Client)

// WithBaseURL points the client at a different API host, used by tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// NewClient builds a client with a sane request timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: 15 * time.Second},
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type queryResponse struct {
	Query struct {
		Pages map[string]struct {
			Title     string `json:"title"`
			Thumbnail struct {
				Source string `json:"source"`
			} `json:"thumbnail"`
		} `json:"pages"`
	} `json:"query"`
}

// PageImage looks up the thumbnail for the page titled name. A page with
// no image returns an empty Thumbnail and no error; only transport and
// decode failures are errors.
func (c *Client) PageImage(ctx context.Context, name string) (Thumbnail, error) {
	endpoint := fmt.Sprintf(
		"%s/w/api.php?action=query&titles=%s&prop=pageimages%%7Cinfo&format=json&pithumbsize=%d&origin=*",
		c.baseURL, url.QueryEscape(name), defaultThumbSize,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Thumbnail{}, fmt.Errorf("wikipedia: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Thumbnail{}, fmt.Errorf("wikipedia: query %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Thumbnail{}, fmt.Errorf("wikipedia: query %q: unexpected status %d", name, resp.StatusCode)
	}

	var decoded queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Thumbnail{}, fmt.Errorf("wikipedia: decode response for %q: %w", name, err)
	}

	for _, page := range decoded.Query.Pages {
		if page.Thumbnail.Source == "" {
			continue
		}
		return Thumbnail{
			URL:    page.Thumbnail.Source,
			Source: c.baseURL + "/wiki/" + url.PathEscape(page.Title),
		}, nil
	}

	return Thumbnail{}, nil
}
