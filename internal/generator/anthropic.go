package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"

	"mention_launcher/internal/domain"
)

const systemPrompt = "You are a creative meme coin generator that creates fun and engaging cryptocurrency concepts."

// AnthropicDetails asks Claude for token details. Attached images are sent
// as URL image blocks next to the prompt.
type AnthropicDetails struct {
	client anthropic.Client
	model  string
}

func NewAnthropicDetails(client anthropic.Client, model string) *AnthropicDetails {
	return &AnthropicDetails{client: client, model: model}
}

func (a *AnthropicDetails) Details(ctx context.Context, in domain.DescriptionAndContext) (*Details, error) {
	blocks := []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(buildPrompt(in))}
	for _, u := range in.ImageURLs {
		blocks = append(blocks, anthropic.NewImageBlock(anthropic.URLImageSourceParam{URL: u}))
	}

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(a.model),
		MaxTokens:   1024,
		Temperature: anthropic.Float(0.7),
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("llm api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("empty response")
	}

	return parseDetails(msg.Content[0].Text)
}

func parseDetails(text string) (*Details, error) {
	jsonStr, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var d Details
	if err := json.Unmarshal([]byte(jsonStr), &d); err != nil {
		return nil, fmt.Errorf("decode details: %w", err)
	}
	if d.Name == "" || d.Symbol == "" {
		return nil, fmt.Errorf("details missing name or symbol")
	}

	return &d, nil
}

func buildPrompt(in domain.DescriptionAndContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a meme cryptocurrency based on the following description:\n%q\n\n", in.Description)

	if in.Context != "" {
		fmt.Fprintf(&b, "The description is a reply to this context:\n%q\n\n", in.Context)
	}
	if len(in.ImageURLs) > 0 {
		b.WriteString("The attached images belong to the description and context. Each one is a photo or the preview frame of a video.\n\n")
	}

	b.WriteString(`Generate a creative name, symbol, description and imageDescription that match the theme.
imageDescription is used as the prompt for a logo. Keep it free of blocked words, real people, brands and other copyrighted content.

Output ONLY a valid JSON object with this schema:
{
  "name": "<string>",
  "symbol": "<1 to 4 letters>",
  "description": "<string>",
  "imageDescription": "<string>"
}`)

	return b.String()
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
