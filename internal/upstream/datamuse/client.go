// Package datamuse implements the spelling-suggestion client against the
// Datamuse /sug endpoint.
package datamuse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Suggestion is one spelling candidate with its relevance score.
type Suggestion struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Client fetches raw spelling suggestions. Relevance filtering and capping
// is the suggestion service's concern.
type Client struct {
	http    httpDoer
	baseURL string
	max     int
}

// NewClient creates a Datamuse client requesting at most max candidates per
// lookup. A nil httpClient falls back to http.DefaultClient.
func NewClient(httpClient *http.Client, baseURL string, max int) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		max:     max,
	}
}

// Lookup returns scored spelling candidates for word.
func (c *Client) Lookup(ctx context.Context, word string) ([]Suggestion, error) {
	u := fmt.Sprintf("%s/sug?s=%s&max=%d", c.baseURL, url.QueryEscape(word), c.max)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build suggestion request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suggestion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("datamuse api error: %d", resp.StatusCode)
	}

	var suggestions []Suggestion
	if err := json.NewDecoder(resp.Body).Decode(&suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode suggestion response: %w", err)
	}

	return suggestions, nil
}
