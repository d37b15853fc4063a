// Package unsplash implements the image lookup client against the Unsplash
// search API.
package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/horadelbocadillo/yotetraduzco-clean/internal/model"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ model.ImageSearcher = (*Client)(nil)

// Client looks up one illustrative photo per query.
type Client struct {
	http      httpDoer
	baseURL   string
	accessKey string
}

// NewClient creates an Unsplash client. A nil httpClient falls back to
// http.DefaultClient.
func NewClient(httpClient *http.Client, baseURL, accessKey string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		http:      httpClient,
		baseURL:   strings.TrimRight(baseURL, "/"),
		accessKey: accessKey,
	}
}

type searchResponse struct {
	Results []struct {
		URLs struct {
			Small string `json:"small"`
		} `json:"urls"`
	} `json:"results"`
}

// FindImage returns the small URL of the first photo matching query, or nil
// when the search produces no result.
func (c *Client) FindImage(ctx context.Context, query string) (*string, error) {
	u := fmt.Sprintf("%s/search/photos?query=%s&per_page=1", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash api error: %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode image response: %w", err)
	}
	if len(payload.Results) == 0 || payload.Results[0].URLs.Small == "" {
		return nil, nil
	}

	imageURL := payload.Results[0].URLs.Small
	return &imageURL, nil
}
