// Package deepl implements the translation client against the DeepL v2 API.
package deepl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/horadelbocadillo/yotetraduzco-clean/internal/model"
)

// Internal adapter interface to enable mocking without a real HTTP server.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ model.Translator = (*Client)(nil)

// Client translates English text to Spanish through DeepL.
type Client struct {
	http    httpDoer
	baseURL string
	authKey string
}

// NewClient creates a DeepL client. A nil httpClient falls back to
// http.DefaultClient.
func NewClient(httpClient *http.Client, baseURL, authKey string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		authKey: authKey,
	}
}

type translateResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// Translate translates word from English to Spanish.
func (c *Client) Translate(ctx context.Context, word string) (model.Translation, error) {
	form := url.Values{}
	form.Set("text", word)
	form.Set("source_lang", "EN")
	form.Set("target_lang", "ES")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v2/translate", strings.NewReader(form.Encode()))
	if err != nil {
		return model.Translation{}, fmt.Errorf("failed to build translate request: %w", err)
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+c.authKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return model.Translation{}, fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Translation{}, fmt.Errorf("deepl api error: %d", resp.StatusCode)
	}

	var payload translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.Translation{}, fmt.Errorf("failed to decode translate response: %w", err)
	}
	if len(payload.Translations) == 0 {
		return model.Translation{}, fmt.Errorf("deepl returned no translations")
	}

	return model.Translation{
		Original:    word,
		Translation: payload.Translations[0].Text,
	}, nil
}
