package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

type pinataMetadata struct {
	Name string `json:"name"`
}

type pinJSONRequest struct {
	PinataContent  any            `json:"pinataContent"`
	PinataMetadata pinataMetadata `json:"pinataMetadata"`
}

// Pinata pins files and JSON documents through the Pinata pinning API.
type Pinata struct {
	httpClient *http.Client
	baseURL    string
	jwt        string
}

func NewPinata(baseURL, jwt string, timeout time.Duration) *Pinata {
	return &Pinata{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		jwt:        jwt,
	}
}

func (p *Pinata) PinFile(ctx context.Context, name string, data []byte) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("write form file: %w", err)
	}

	meta, err := json.Marshal(pinataMetadata{Name: name})
	if err != nil {
		return "", fmt.Errorf("marshal metadata: %w", err)
	}
	if err := w.WriteField("pinataMetadata", string(meta)); err != nil {
		return "", fmt.Errorf("write metadata field: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close multipart: %w", err)
	}

	return p.pin(ctx, "/pinning/pinFileToIPFS", w.FormDataContentType(), &buf)
}

func (p *Pinata) PinJSON(ctx context.Context, name string, v any) (string, error) {
	body, err := json.Marshal(pinJSONRequest{
		PinataContent:  v,
		PinataMetadata: pinataMetadata{Name: name},
	})
	if err != nil {
		return "", fmt.Errorf("marshal json: %w", err)
	}

	return p.pin(ctx, "/pinning/pinJSONToIPFS", "application/json", bytes.NewReader(body))
}

func (p *Pinata) pin(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+p.jwt)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("unexpected status: %d: %s", resp.StatusCode, msg)
	}

	var out pinResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.IpfsHash == "" {
		return "", fmt.Errorf("empty ipfs hash")
	}

	return out.IpfsHash, nil
}
