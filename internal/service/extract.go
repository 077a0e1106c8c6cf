package service

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"mention_launcher/internal/domain"
)

// Extractor turns a mention into generator input: the mention text without
// the bot handle, the text of the posts it answers or quotes, and every
// attached image.
type Extractor struct {
	transport Transport
	handle    *regexp.Regexp
	logger    *slog.Logger
}

func NewExtractor(transport Transport, handle string, logger *slog.Logger) *Extractor {
	return &Extractor{
		transport: transport,
		handle:    regexp.MustCompile(`(?i)` + regexp.QuoteMeta(handle)),
		logger:    logger,
	}
}

// Extract never fails. When a context post cannot be resolved the result
// carries the description and the mention's own images only.
func (e *Extractor) Extract(ctx context.Context, m domain.MentionWithContext) domain.DescriptionAndContext {
	out := domain.DescriptionAndContext{
		Description: e.sanitize(m.Text),
		ImageURLs:   imageURLs(m.Media),
	}

	var texts []string
	var images []string
	for _, id := range contextIDs(m.Mention) {
		post, ok := m.Referenced[id]
		if !ok {
			fetched, err := e.transport.GetPost(ctx, id)
			if err != nil {
				e.logger.Error("failed to resolve context post",
					"mention_id", m.ID,
					"context_id", id,
					"error", err,
				)
				return out
			}
			post = *fetched
		}
		texts = append(texts, e.sanitize(post.Text))
		images = append(images, imageURLs(post.Media)...)
	}

	out.Context = strings.Join(texts, "\n")
	out.ImageURLs = append(out.ImageURLs, images...)
	return out
}

func (e *Extractor) sanitize(text string) string {
	return strings.TrimSpace(e.handle.ReplaceAllString(text, ""))
}

// contextIDs lists the conversation root (unless the mention is the root)
// and every quoted or replied-to post, without duplicates.
func contextIDs(m domain.Mention) []string {
	seen := make(map[string]struct{})
	var ids []string
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if m.ConversationID != m.ID {
		add(m.ConversationID)
	}
	for _, ref := range m.References {
		if ref.Type == domain.ReferenceQuoted || ref.Type == domain.ReferenceRepliedTo {
			add(ref.ID)
		}
	}
	return ids
}

func imageURLs(media []domain.Media) []string {
	var urls []string
	for _, md := range media {
		if u := md.ImageURL(); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
