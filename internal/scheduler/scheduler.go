package scheduler

import (
	"context"
	"log/slog"
	"time"

	"mention_launcher/internal/domain"
)

// Runner defines the interface for one poll cycle.
type Runner interface {
	RunCycle(ctx context.Context) (*domain.PollStats, error)
}

// Scheduler runs cycles back to back with a fixed delay between the end of
// one cycle and the start of the next, so cycles never overlap.
type Scheduler struct {
	runner       Runner
	interval     time.Duration
	startupDelay time.Duration
	logger       *slog.Logger
}

func NewScheduler(runner Runner, interval, startupDelay time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:       runner,
		interval:     interval,
		startupDelay: startupDelay,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "startup_delay", s.startupDelay)

	if err := s.wait(ctx, s.startupDelay); err != nil {
		s.logger.Info("scheduler stopped")
		return err
	}

	for {
		s.runCycle(ctx)

		if err := s.wait(ctx, s.interval); err != nil {
			s.logger.Info("scheduler stopped")
			return err
		}
	}
}

// runCycle passes ctx through unchanged: mentions admitted by the cycle are
// drained after it returns and must not inherit a per-cycle deadline.
func (s *Scheduler) runCycle(ctx context.Context) {
	stats, err := s.runner.RunCycle(ctx)
	if err != nil {
		s.logger.Error("poll cycle failed", "error", err)
		return
	}
	if stats.Enqueued > 0 {
		s.logger.Info("poll cycle enqueued mentions",
			"enqueued", stats.Enqueued,
			"duplicates", stats.Duplicates,
		)
	}
}

func (s *Scheduler) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 || ctx.Err() != nil {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
