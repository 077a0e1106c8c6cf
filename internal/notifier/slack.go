// Package notifier posts operational events to Slack incoming webhooks.
package notifier

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
	InfoWebhookURL  string
	ErrorWebhookURL string
	AppName         string
	Timeout         time.Duration
}

type webhookPayload struct {
	Text string `json:"text"`
}

// Slack sends info events to one webhook and errors to another. Delivery is
// best effort: failures are logged and never returned.
type Slack struct {
	httpClient *http.Client
	infoURL    string
	errorURL   string
	appName    string
	logger     *slog.Logger
}

func NewSlack(cfg Config, logger *slog.Logger) *Slack {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Slack{
		httpClient: &http.Client{Timeout: timeout},
		infoURL:    cfg.InfoWebhookURL,
		errorURL:   cfg.ErrorWebhookURL,
		appName:    cfg.AppName,
		logger:     logger.With("component", "slack"),
	}
}

func (s *Slack) Notify(ctx context.Context, level slog.Level, msg string, fields map[string]any) {
	url := s.infoURL
	if level >= slog.LevelError {
		url = s.errorURL
	}
	if url == "" {
		return
	}

	text, err := s.format(msg, fields)
	if err != nil {
		s.logger.Warn("failed to format slack message", "message", msg, "error", err)
		return
	}

	if err := s.post(ctx, url, text); err != nil {
		s.logger.Warn("failed to send slack message", "message", msg, "error", err)
	}
}

func (s *Slack) format(msg string, fields map[string]any) (string, error) {
	body := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["message"] = msg

	raw, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal fields: %w", err)
	}

	return "```\n[" + s.appName + "]\n" + string(raw) + "\n```", nil
}

func (s *Slack) post(ctx context.Context, url, text string) error {
	payload, err := json.Marshal(webhookPayload{Text: text})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return nil
}
