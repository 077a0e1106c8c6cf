package generator

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	Quality        string `json:"quality"`
	Style          string `json:"style"`
	ResponseFormat string `json:"response_format"`
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

// ImageAPI calls an OpenAI-compatible image generation endpoint and returns
// the decoded PNG.
type ImageAPI struct {
	httpClient *http.Client
	url        string
	apiKey     string
	model      string
}

func NewImageAPI(url, apiKey, model string, timeout time.Duration) *ImageAPI {
	return &ImageAPI{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		apiKey:     apiKey,
		model:      model,
	}
}

func (a *ImageAPI) Logo(ctx context.Context, d Details) ([]byte, error) {
	body, err := json.Marshal(imageRequest{
		Model:          a.model,
		Prompt:         logoPrompt(d),
		N:              1,
		Size:           "1024x1024",
		Quality:        "hd",
		Style:          "vivid",
		ResponseFormat: "b64_json",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("unexpected status: %d: %s", resp.StatusCode, msg)
	}

	var out imageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(out.Data) == 0 || out.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("no image in response")
	}

	img, err := base64.StdEncoding.DecodeString(out.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func logoPrompt(d Details) string {
	return fmt.Sprintf(`Create a fun and memeable cryptocurrency logo for a coin with symbol %q and name %q.
The logo's description is: %s.
Make it a circular logo.
No text should be included in the logo.
Style: cartoon-like with vibrant colors, suitable for a crypto community.`, d.Symbol, d.Name, d.ImageDescription)
}
