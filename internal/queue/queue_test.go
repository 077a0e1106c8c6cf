package queue

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) add(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, s)
}

func (r *recorder) items() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueue_OrderAndIsolation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	rec := &recorder{}

	q := New(func(_ context.Context, item string) error {
		rec.add(item)
		switch item {
		case "B":
			return errors.New("chain write reverted")
		case "C":
			panic("nil token info")
		}
		return nil
	}, Options[string]{
		Attrs: func(item string) []any { return []any{"mention_id", item} },
	}, logger)

	ctx := context.Background()
	for _, item := range []string{"A", "B", "C", "D"} {
		q.Enqueue(ctx, item)
	}
	q.Wait()

	assert.Equal(t, []string{"A", "B", "C", "D"}, rec.items())
	assert.Equal(t, 0, q.pending())
	assert.False(t, q.isDraining())

	logs := buf.String()
	assert.Contains(t, logs, "chain write reverted")
	assert.Contains(t, logs, "mention_id=B")
	assert.Contains(t, logs, "handler panic: nil token info")
	assert.Contains(t, logs, "mention_id=C")
	assert.NotContains(t, logs, "mention_id=A")
}

func TestQueue_SingleActiveDrain(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	rec := &recorder{}
	var drains, active, maxActive atomic.Int32

	q := New(func(_ context.Context, item string) error {
		n := active.Add(1)
		defer active.Add(-1)
		for {
			m := maxActive.Load()
			if n <= m || maxActive.CompareAndSwap(m, n) {
				break
			}
		}
		if item == "A" {
			close(started)
			<-release
		}
		rec.add(item)
		return nil
	}, Options[string]{
		Cooldown:    time.Millisecond,
		BeforeDrain: func(context.Context) { drains.Add(1) },
	}, discardLogger())

	ctx := context.Background()
	q.Enqueue(ctx, "A")
	<-started

	var wg sync.WaitGroup
	for _, item := range []string{"B", "C", "D"} {
		wg.Add(1)
		go func(item string) {
			defer wg.Done()
			q.Enqueue(ctx, item)
		}(item)
	}
	wg.Wait()
	assert.False(t, q.Kick(ctx))
	assert.Equal(t, 4, q.pending())

	close(release)
	q.Wait()

	assert.Equal(t, int32(1), drains.Load())
	assert.Equal(t, int32(1), maxActive.Load())
	items := rec.items()
	require.Len(t, items, 4)
	assert.Equal(t, "A", items[0])
	assert.ElementsMatch(t, []string{"B", "C", "D"}, items[1:])
}

func TestQueue_CooldownAfterEveryItem(t *testing.T) {
	var mu sync.Mutex
	var events []string

	q := New(func(_ context.Context, item string) error {
		mu.Lock()
		events = append(events, "handle "+item)
		mu.Unlock()
		if item == "B" {
			return errors.New("boom")
		}
		return nil
	}, Options[string]{Cooldown: time.Second}, discardLogger())
	q.sleep = func(_ context.Context, d time.Duration) error {
		mu.Lock()
		events = append(events, "cooldown "+d.String())
		mu.Unlock()
		return nil
	}

	ctx := context.Background()
	q.mu.Lock()
	q.items = []string{"A", "B"}
	q.mu.Unlock()
	q.Kick(ctx)
	q.Wait()

	assert.Equal(t, []string{"handle A", "cooldown 1s", "handle B", "cooldown 1s"}, events)
}

func TestQueue_HeadRemovedAfterHandler(t *testing.T) {
	var q *Queue[string]
	var lens []int
	q = New(func(_ context.Context, _ string) error {
		lens = append(lens, q.pending())
		return nil
	}, Options[string]{}, discardLogger())

	q.mu.Lock()
	q.items = []string{"A", "B", "C"}
	q.mu.Unlock()
	q.Kick(context.Background())
	q.Wait()

	assert.Equal(t, []int{3, 2, 1}, lens)
}

func TestQueue_KickOnEmptyRunsBeforeDrain(t *testing.T) {
	var drains atomic.Int32
	q := New(func(context.Context, string) error { return nil }, Options[string]{
		BeforeDrain: func(context.Context) { drains.Add(1) },
	}, discardLogger())

	assert.True(t, q.Kick(context.Background()))
	q.Wait()
	assert.True(t, q.Kick(context.Background()))
	q.Wait()

	assert.Equal(t, int32(2), drains.Load())
	assert.False(t, q.isDraining())
}

func TestQueue_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rec := &recorder{}
	q := New(func(_ context.Context, item string) error {
		rec.add(item)
		cancel()
		return nil
	}, Options[string]{Cooldown: time.Hour}, discardLogger())

	q.mu.Lock()
	q.items = []string{"A", "B"}
	q.mu.Unlock()
	q.Kick(ctx)
	q.Wait()

	assert.Equal(t, []string{"A"}, rec.items())
	assert.Equal(t, 1, q.pending())
	assert.False(t, q.isDraining())
}
