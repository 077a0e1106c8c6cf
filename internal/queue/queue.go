// Package queue provides the single-consumer launch queue. Items are handled
// strictly in arrival order, one at a time, with a cooldown after each.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Handler processes one item. A returned error or a panic is logged and the
// drain moves on to the next item.
type Handler[T any] func(ctx context.Context, item T) error

type Options[T any] struct {
	// Cooldown is waited after every item regardless of its outcome.
	Cooldown time.Duration

	// BeforeDrain runs once at the start of every drain, before the first
	// item.
	BeforeDrain func(ctx context.Context)

	// Attrs returns the log fields identifying an item.
	Attrs func(item T) []any
}

type Queue[T any] struct {
	mu       sync.Mutex
	items    []T
	draining bool
	wg       sync.WaitGroup

	handler     Handler[T]
	cooldown    time.Duration
	beforeDrain func(ctx context.Context)
	attrs       func(item T) []any
	logger      *slog.Logger
	sleep       func(ctx context.Context, d time.Duration) error
}

func New[T any](handler Handler[T], opts Options[T], logger *slog.Logger) *Queue[T] {
	return &Queue[T]{
		handler:     handler,
		cooldown:    opts.Cooldown,
		beforeDrain: opts.BeforeDrain,
		attrs:       opts.Attrs,
		logger:      logger.With("component", "launch_queue"),
		sleep:       sleepContext,
	}
}

// Enqueue appends item and starts a drain unless one is already running. The
// running drain picks up the new item.
func (q *Queue[T]) Enqueue(ctx context.Context, item T) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()

	q.Kick(ctx)
}

// Kick starts a drain in the background if none is active. It returns false
// when a drain was already running. A drain started on an empty queue still
// runs BeforeDrain.
func (q *Queue[T]) Kick(ctx context.Context) bool {
	q.mu.Lock()
	if q.draining {
		q.mu.Unlock()
		return false
	}
	q.draining = true
	q.wg.Add(1)
	q.mu.Unlock()

	go q.drain(ctx)
	return true
}

// Wait blocks until the active drain, if any, has finished.
func (q *Queue[T]) Wait() {
	q.wg.Wait()
}

func (q *Queue[T]) pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

func (q *Queue[T]) isDraining() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.draining
}

func (q *Queue[T]) drain(ctx context.Context) {
	defer q.wg.Done()

	if q.beforeDrain != nil {
		q.beforeDrain(ctx)
	}

	for {
		q.mu.Lock()
		if len(q.items) == 0 || ctx.Err() != nil {
			q.draining = false
			q.mu.Unlock()
			return
		}
		item := q.items[0]
		q.mu.Unlock()

		q.handle(ctx, item)

		q.mu.Lock()
		var zero T
		q.items[0] = zero
		q.items = q.items[1:]
		q.mu.Unlock()

		if err := q.sleep(ctx, q.cooldown); err != nil {
			q.mu.Lock()
			q.draining = false
			q.mu.Unlock()
			return
		}
	}
}

func (q *Queue[T]) handle(ctx context.Context, item T) {
	err := q.safeHandle(ctx, item)
	if err == nil {
		return
	}

	args := []any{"error", err}
	if q.attrs != nil {
		args = append(args, q.attrs(item)...)
	}
	q.logger.Error("handle item failed", args...)
}

func (q *Queue[T]) safeHandle(ctx context.Context, item T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return q.handler(ctx, item)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
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
