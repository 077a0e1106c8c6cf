package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"log/slog"
	"time"

	"mention_launcher/internal/domain"
	"mention_launcher/internal/poller"
)

type MentionPoller interface {
	Poll(ctx context.Context, windowStart time.Time, cursor string) (*poller.Result, error)
}

type RateLimiter interface {
	CheckLimits(userID string) domain.LimitCheck
}

// Transport is the social API used while handling a mention.
type Transport interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetPost(ctx context.Context, postID string) (*domain.Post, error)
	Reply(ctx context.Context, text, parentID string) error
}

type Generator interface {
	Generate(ctx context.Context, in domain.DescriptionAndContext) (*domain.TokenInfo, error)
}

type Chain interface {
	Hatch(ctx context.Context, name, symbol, receiver, metadataURI string) (string, error)
	Migrate(ctx context.Context, tokenAddress string) (string, error)
	ListMigrationCandidates(ctx context.Context) ([]string, error)
	MarketURL(tokenAddress string) string
}

type LaunchStore interface {
	Record(ctx context.Context, launch *domain.Launch) error
	MarkMigrated(ctx context.Context, migration *domain.Migration) error
}

type Publisher interface {
	PublishLaunch(ctx context.Context, launch *domain.Launch) error
	PublishMigration(ctx context.Context, migration *domain.Migration) error
	Close() error
}

// Notifier forwards operational events to humans. Implementations swallow
// their own failures.
type Notifier interface {
	Notify(ctx context.Context, level slog.Level, msg string, fields map[string]any)
}

type Shortener interface {
	Shorten(ctx context.Context, longURL string) string
}
