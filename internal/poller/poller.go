// Package poller pages through the mention search transport and hands back
// one ordered batch per poll.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mention_launcher/internal/domain"
)

// RateLimit is the upstream quota reported with a page. A zero Reset means
// the upstream did not report one.
type RateLimit struct {
	Remaining int
	Reset     time.Time
}

// SearchQuery is one page request. SinceID and StartTime are mutually
// exclusive; the poller never sets both.
type SearchQuery struct {
	Query      string
	SinceID    string
	StartTime  time.Time
	PageToken  string
	MaxResults int
}

type SearchPage struct {
	Mentions  []domain.MentionWithContext
	NextToken string
	NewestID  string
	RateLimit RateLimit
}

// Transport is the upstream search API.
type Transport interface {
	SearchMentions(ctx context.Context, q SearchQuery) (*SearchPage, error)
}

// MaxPageSize is the largest page the upstream search returns.
const MaxPageSize = 100

type Config struct {
	Query    string
	PageSize int
}

type Result struct {
	Mentions []domain.MentionWithContext
	NewestID string
	Pages    int
}

type Poller struct {
	transport Transport
	cfg       Config
	logger    *slog.Logger
	now       func() time.Time
	sleep     func(ctx context.Context, d time.Duration) error
}

func New(transport Transport, cfg Config, logger *slog.Logger) *Poller {
	if cfg.PageSize > MaxPageSize {
		cfg.PageSize = MaxPageSize
	}
	return &Poller{
		transport: transport,
		cfg:       cfg,
		logger:    logger.With("component", "poller"),
		now:       time.Now,
		sleep:     sleepContext,
	}
}

// Poll fetches every page of mentions newer than cursor, or created after
// windowStart when there is no cursor. Pages are accumulated in upstream
// order; a failure on any page fails the whole poll.
func (p *Poller) Poll(ctx context.Context, windowStart time.Time, cursor string) (*Result, error) {
	q := SearchQuery{
		Query:      p.cfg.Query,
		MaxResults: p.cfg.PageSize,
	}
	if cursor != "" {
		q.SinceID = cursor
	} else {
		q.StartTime = windowStart
	}

	result := &Result{}
	for {
		page, err := p.transport.SearchMentions(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("search page %d: %w", result.Pages, err)
		}
		result.Pages++
		result.Mentions = append(result.Mentions, page.Mentions...)

		p.logger.Debug("fetched page",
			"page", result.Pages,
			"mentions", len(page.Mentions),
			"total", len(result.Mentions),
		)

		if page.RateLimit.Remaining == 0 && !page.RateLimit.Reset.IsZero() {
			wait := page.RateLimit.Reset.Sub(p.now())
			p.logger.Warn("search rate limit reached",
				"since_id", q.SinceID,
				"start_time", q.StartTime,
				"wait", wait,
			)
			if wait > 0 {
				if err := p.sleep(ctx, wait); err != nil {
					return nil, err
				}
			}
		}

		if len(page.Mentions) > 0 && page.NewestID != "" {
			if result.NewestID == "" || CompareIDs(page.NewestID, result.NewestID) > 0 {
				result.NewestID = page.NewestID
			}
		}

		if len(page.Mentions) < p.cfg.PageSize || page.NextToken == "" {
			break
		}
		q.PageToken = page.NextToken
	}

	return result, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
