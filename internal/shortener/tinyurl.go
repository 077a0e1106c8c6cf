// Package shortener shortens launch URLs with the TinyURL API.
package shortener

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type Config struct {
	APIURL  string
	APIKey  string
	Domain  string
	Timeout time.Duration
}

type createRequest struct {
	URL    string `json:"url"`
	Domain string `json:"domain,omitempty"`
}

type createResponse struct {
	Data struct {
		TinyURL string `json:"tiny_url"`
	} `json:"data"`
}

type TinyURL struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	domain     string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *TinyURL {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TinyURL{
		httpClient: &http.Client{Timeout: timeout},
		apiURL:     cfg.APIURL,
		apiKey:     cfg.APIKey,
		domain:     cfg.Domain,
		logger:     logger.With("component", "shortener"),
	}
}

// Shorten returns the short form of longURL, or longURL itself when the API
// call fails.
func (t *TinyURL) Shorten(ctx context.Context, longURL string) string {
	short, err := t.create(ctx, longURL)
	if err != nil {
		t.logger.Error("failed to shorten url", "long_url", longURL, "error", err)
		return longURL
	}
	return short
}

func (t *TinyURL) create(ctx context.Context, longURL string) (string, error) {
	body, err := json.Marshal(createRequest{URL: longURL, Domain: t.domain})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var out createResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Data.TinyURL == "" {
		return "", fmt.Errorf("no tiny_url in response")
	}

	return out.Data.TinyURL, nil
}
