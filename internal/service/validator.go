package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mention_launcher/internal/config"
	"mention_launcher/internal/domain"
)

// Rejection explains why a mention failed validation. The empty value means
// the mention passed.
type Rejection string

const (
	RejectAccountTooNew   Rejection = "account_too_new"
	RejectTooFewFollowers Rejection = "too_few_followers"
	RejectBlockedKeyword  Rejection = "blocked_keyword"
)

// Validator applies the anti-abuse rules to a mention's author and text.
type Validator struct {
	transport Transport
	cfg       config.SecurityConfig
	keywords  []string
	logger    *slog.Logger
	now       func() time.Time
}

func NewValidator(transport Transport, cfg config.SecurityConfig, logger *slog.Logger) *Validator {
	keywords := make([]string, 0, len(cfg.BlockedKeywords))
	for _, kw := range cfg.BlockedKeywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			keywords = append(keywords, kw)
		}
	}

	return &Validator{
		transport: transport,
		cfg:       cfg,
		keywords:  keywords,
		logger:    logger,
		now:       time.Now,
	}
}

// Validate returns a rejection reason, or "" when the mention may proceed.
// The author comes from the search side data when present; otherwise it is
// looked up.
func (v *Validator) Validate(ctx context.Context, m domain.MentionWithContext) (Rejection, error) {
	author := m.Author
	if author == nil {
		user, err := v.transport.GetUser(ctx, m.AuthorID)
		if err != nil {
			return "", fmt.Errorf("get user %s: %w", m.AuthorID, err)
		}
		author = user
	}

	age := v.now().Sub(author.CreatedAt)
	if age < v.cfg.MinAccountAge {
		v.logger.Debug("account age validation failed",
			"author_id", author.ID,
			"username", author.Username,
			"age", age,
		)
		return RejectAccountTooNew, nil
	}

	if author.FollowersCount < v.cfg.MinFollowers {
		v.logger.Debug("follower count validation failed",
			"author_id", author.ID,
			"username", author.Username,
			"followers", author.FollowersCount,
		)
		return RejectTooFewFollowers, nil
	}

	text := strings.ToLower(m.Text)
	for _, kw := range v.keywords {
		if strings.Contains(text, kw) {
			v.logger.Debug("blocked keyword validation failed",
				"author_id", author.ID,
				"mention_id", m.ID,
				"keyword", kw,
			)
			return RejectBlockedKeyword, nil
		}
	}

	return "", nil
}
