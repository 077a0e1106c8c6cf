package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mention_launcher/internal/domain"
)

type fakeRunner struct {
	mu      sync.Mutex
	calls   int
	running bool
	overlap bool
	stopAt  int
	cancel  context.CancelFunc
	err     error
}

func (f *fakeRunner) RunCycle(ctx context.Context) (*domain.PollStats, error) {
	f.mu.Lock()
	if f.running {
		f.overlap = true
	}
	f.running = true
	f.calls++
	calls := f.calls
	f.mu.Unlock()

	time.Sleep(time.Millisecond)

	f.mu.Lock()
	f.running = false
	f.mu.Unlock()

	if calls == f.stopAt {
		f.cancel()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &domain.PollStats{Enqueued: 1}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunsCyclesSequentially(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := &fakeRunner{stopAt: 3, cancel: cancel}
	s := NewScheduler(runner, time.Millisecond, 0, discardLogger())

	err := s.Start(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, runner.calls)
	assert.False(t, runner.overlap)
}

func TestScheduler_ContinuesAfterCycleError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := &fakeRunner{stopAt: 2, cancel: cancel, err: errors.New("search failed")}
	s := NewScheduler(runner, time.Millisecond, 0, discardLogger())

	err := s.Start(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, runner.calls)
}

func TestScheduler_CancelDuringStartupDelay(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	runner := &fakeRunner{cancel: cancel}
	s := NewScheduler(runner, time.Millisecond, time.Hour, discardLogger())

	err := s.Start(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, runner.calls)
}

func TestScheduler_PassesParentContext(t *testing.T) {
	type key struct{}
	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), key{}, "parent"))
	defer cancel()

	var deadlineSet bool
	var value any
	runner := runnerFunc(func(ctx context.Context) (*domain.PollStats, error) {
		_, deadlineSet = ctx.Deadline()
		value = ctx.Value(key{})
		cancel()
		return &domain.PollStats{}, nil
	})
	s := NewScheduler(runner, time.Hour, 0, discardLogger())

	_ = s.Start(ctx)

	assert.False(t, deadlineSet)
	assert.Equal(t, "parent", value)
}

type runnerFunc func(ctx context.Context) (*domain.PollStats, error)

func (f runnerFunc) RunCycle(ctx context.Context) (*domain.PollStats, error) {
	return f(ctx)
}
