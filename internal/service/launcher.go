package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mention_launcher/internal/config"
	"mention_launcher/internal/dedup"
	"mention_launcher/internal/domain"
	"mention_launcher/internal/poller"
	"mention_launcher/internal/queue"
)

// Deps are the collaborators of a Launcher. Store, Publisher and Shortener
// are optional.
type Deps struct {
	Poller    MentionPoller
	Limiter   RateLimiter
	Transport Transport
	Generator Generator
	Chain     Chain
	Store     LaunchStore
	Publisher Publisher
	Notifier  Notifier
	Shortener Shortener
}

// Launcher ties the poll loop to the launch queue. RunCycle is called by the
// scheduler; every admitted mention is handled by HandleMention on the
// queue's drain goroutine.
type Launcher struct {
	deps      Deps
	cfg       config.BotConfig
	ledger    *dedup.Ledger
	queue     *queue.Queue[domain.MentionWithContext]
	validator *Validator
	extractor *Extractor
	logger    *slog.Logger

	startedAt time.Time
	cursor    poller.Cursor
	now       func() time.Time
}

func NewLauncher(deps Deps, cfg config.BotConfig, security config.SecurityConfig, logger *slog.Logger) *Launcher {
	if deps.Notifier == nil {
		deps.Notifier = nopNotifier{}
	}

	l := &Launcher{
		deps:      deps,
		cfg:       cfg,
		ledger:    dedup.NewLedger(),
		validator: NewValidator(deps.Transport, security, logger),
		extractor: NewExtractor(deps.Transport, cfg.Handle, logger),
		logger:    logger,
		startedAt: time.Now(),
		now:       time.Now,
	}
	l.queue = queue.New(l.handle, queue.Options[domain.MentionWithContext]{
		Cooldown:    cfg.Cooldown,
		BeforeDrain: l.SweepMigrations,
		Attrs: func(m domain.MentionWithContext) []any {
			return []any{"mention_id", m.ID, "conversation_id", m.ConversationID, "author_id", m.AuthorID}
		},
	}, logger)

	return l
}

// Wait blocks until the in-flight drain, if any, has finished.
func (l *Launcher) Wait() {
	l.queue.Wait()
}

// RunCycle polls once, admits unseen mentions to the queue and kicks a drain.
func (l *Launcher) RunCycle(ctx context.Context) (*domain.PollStats, error) {
	start := l.now()

	if l.cursor.ExpireIfStale(start, l.cfg.CursorStaleness) {
		l.logger.Info("cursor is stale, falling back to time window search")
	}

	floor := poller.SearchFloor(start, l.startedAt, l.cfg.LookbackWindow, l.cfg.StartSafetyMargin)
	res, err := l.deps.Poller.Poll(ctx, floor, l.cursor.ID())
	if err != nil {
		return nil, fmt.Errorf("poll mentions: %w", err)
	}
	l.cursor.Advance(res.NewestID, l.now())

	stats := &domain.PollStats{
		Fetched:  len(res.Mentions),
		NewestID: l.cursor.ID(),
	}

	for _, m := range res.Mentions {
		if !l.ledger.Accept(m.ID, m.ConversationID) {
			stats.Duplicates++
			continue
		}
		l.queue.Enqueue(ctx, m)
		stats.Enqueued++

		fields := map[string]any{
			"mention_id":      m.ID,
			"conversation_id": m.ConversationID,
			"author_id":       m.AuthorID,
			"text":            m.Text,
		}
		l.logger.Info("added mention to launch queue", flatten(fields)...)
		l.deps.Notifier.Notify(ctx, slog.LevelInfo, "Added mention to launch queue", fields)
	}

	l.queue.Kick(ctx)

	stats.Duration = l.now().Sub(start)
	l.logger.Debug("poll cycle completed",
		"fetched", stats.Fetched,
		"enqueued", stats.Enqueued,
		"duplicates", stats.Duplicates,
		"cursor", stats.NewestID,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (l *Launcher) handle(ctx context.Context, m domain.MentionWithContext) error {
	_, err := l.HandleMention(ctx, m)
	if err != nil {
		l.deps.Notifier.Notify(ctx, slog.LevelError, "Error handling mention", map[string]any{
			"mention_id": m.ID,
			"error":      err.Error(),
		})
	}
	return err
}

// HandleMention runs the launch pipeline for one mention. Rate-limited and
// rejected mentions are dropped without error.
func (l *Launcher) HandleMention(ctx context.Context, m domain.MentionWithContext) (domain.Outcome, error) {
	log := l.logger.With("mention_id", m.ID, "author_id", m.AuthorID)

	limits := l.deps.Limiter.CheckLimits(m.AuthorID)
	if !limits.Allowed() {
		log.Debug("rate limit exceeded",
			"user_remaining", limits.User.RemainingRequests,
			"global_remaining", limits.Global.RemainingRequests,
		)
		return domain.OutcomeRateLimited, nil
	}

	rejection, err := l.validator.Validate(ctx, m)
	if err != nil {
		return "", fmt.Errorf("validate mention: %w", err)
	}
	if rejection != "" {
		log.Debug("invalid mention", "reason", rejection)
		return domain.OutcomeRejected, nil
	}

	if l.cfg.Acknowledge {
		if err := l.deps.Transport.Reply(ctx, l.cfg.AcknowledgeText, m.ID); err != nil {
			return "", fmt.Errorf("acknowledge mention: %w", err)
		}
	}

	input := l.extractor.Extract(ctx, m)

	info, err := l.deps.Generator.Generate(ctx, input)
	if err != nil {
		return "", fmt.Errorf("generate token info: %w", err)
	}
	if info.Name == "" || info.Symbol == "" || info.MetadataURI == "" {
		return "", errors.New("generate token info: incomplete result")
	}

	token, err := l.deps.Chain.Hatch(ctx, info.Name, info.Symbol, info.Receiver, info.MetadataURI)
	if err != nil {
		return "", fmt.Errorf("hatch token: %w", err)
	}

	launchURL := l.deps.Chain.MarketURL(token)
	if l.deps.Shortener != nil {
		launchURL = l.deps.Shortener.Shorten(ctx, launchURL)
	}

	launch := &domain.Launch{
		MentionID:      m.ID,
		ConversationID: m.ConversationID,
		AuthorID:       m.AuthorID,
		TokenAddress:   token,
		Name:           info.Name,
		Symbol:         info.Symbol,
		Description:    info.Description,
		MetadataURI:    info.MetadataURI,
		LaunchURL:      launchURL,
		LaunchedAt:     l.now().UTC(),
	}
	if info.Receiver != "" {
		launch.Receiver = &info.Receiver
	}
	l.recordLaunch(ctx, launch)

	text := ComposeReply(*info, launchURL, limits.User, limits.Global, l.now())
	if err := l.deps.Transport.Reply(ctx, text, m.ID); err != nil {
		return "", fmt.Errorf("reply to mention: %w", err)
	}

	fields := map[string]any{
		"mention_id":      m.ID,
		"conversation_id": m.ConversationID,
		"author_id":       m.AuthorID,
		"token_address":   token,
		"reply":           text,
	}
	log.Info("mention handled and replied", "token_address", token, "launch_url", launchURL)
	l.deps.Notifier.Notify(ctx, slog.LevelInfo, "Mention handled successfully and replied", fields)

	return domain.OutcomeLaunched, nil
}

// recordLaunch stores and publishes the launch. The token already exists
// on-chain, so failures here are logged and do not fail the mention.
func (l *Launcher) recordLaunch(ctx context.Context, launch *domain.Launch) {
	if l.deps.Store != nil {
		if err := l.deps.Store.Record(ctx, launch); err != nil {
			l.logger.Error("failed to record launch", "token_address", launch.TokenAddress, "error", err)
		}
	}
	if l.deps.Publisher != nil {
		if err := l.deps.Publisher.PublishLaunch(ctx, launch); err != nil {
			l.logger.Error("failed to publish launch", "token_address", launch.TokenAddress, "error", err)
		}
	}
}

func flatten(fields map[string]any) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, slog.Level, string, map[string]any) {}
