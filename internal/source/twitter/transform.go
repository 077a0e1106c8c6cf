package twitter

import (
	"log/slog"
	"time"

	"mention_launcher/internal/domain"
)

// index resolves the includes of a response by id.
type index struct {
	users  map[string]apiUser
	tweets map[string]apiTweet
	media  map[string]apiMedia
	logger *slog.Logger
}

func newIndex(inc includes, logger *slog.Logger) *index {
	idx := &index{
		users:  make(map[string]apiUser, len(inc.Users)),
		tweets: make(map[string]apiTweet, len(inc.Tweets)),
		media:  make(map[string]apiMedia, len(inc.Media)),
		logger: logger,
	}
	for _, u := range inc.Users {
		idx.users[u.ID] = u
	}
	for _, t := range inc.Tweets {
		idx.tweets[t.ID] = t
	}
	for _, m := range inc.Media {
		idx.media[m.MediaKey] = m
	}
	return idx
}

func (idx *index) mention(t apiTweet) domain.MentionWithContext {
	m := domain.MentionWithContext{
		Mention: domain.Mention{
			ID:             t.ID,
			AuthorID:       t.AuthorID,
			ConversationID: t.ConversationID,
			Text:           t.Text,
			CreatedAt:      parseTime(t.CreatedAt),
			Media:          idx.attachments(t),
		},
		Referenced: make(map[string]domain.Post),
	}

	for _, ref := range t.ReferencedTweets {
		m.References = append(m.References, domain.Reference{
			Type: domain.ReferenceType(ref.Type),
			ID:   ref.ID,
		})
		if rt, ok := idx.tweets[ref.ID]; ok {
			m.Referenced[ref.ID] = idx.post(rt)
		}
	}

	if u, ok := idx.users[t.AuthorID]; ok {
		author := toUser(u, idx.logger)
		m.Author = &author
	}

	return m
}

func (idx *index) post(t apiTweet) domain.Post {
	return domain.Post{
		ID:    t.ID,
		Text:  t.Text,
		Media: idx.attachments(t),
	}
}

func (idx *index) attachments(t apiTweet) []domain.Media {
	if t.Attachments == nil {
		return nil
	}
	var out []domain.Media
	for _, key := range t.Attachments.MediaKeys {
		md, ok := idx.media[key]
		if !ok {
			continue
		}
		out = append(out, domain.Media{
			Key:        md.MediaKey,
			Type:       md.Type,
			URL:        md.URL,
			PreviewURL: md.PreviewImageURL,
		})
	}
	return out
}

func toUser(u apiUser, logger *slog.Logger) domain.User {
	createdAt := parseTime(u.CreatedAt)
	if createdAt.IsZero() && u.CreatedAt != "" {
		logger.Warn("failed to parse user created_at", "user_id", u.ID, "created_at", u.CreatedAt)
	}
	return domain.User{
		ID:             u.ID,
		Username:       u.Username,
		Name:           u.Name,
		CreatedAt:      createdAt,
		FollowersCount: u.PublicMetrics.FollowersCount,
	}
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
