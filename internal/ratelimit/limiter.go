// Package ratelimit implements the two-tier launch budget: a fixed window per
// author and a day-bucketed global counter.
package ratelimit

import (
	"sync"
	"time"

	"mention_launcher/internal/domain"
)

const day = 24 * time.Hour

type Config struct {
	MaxPerUser   int
	UserWindow   time.Duration
	GlobalPerDay int
}

type userRecord struct {
	count       int
	windowStart time.Time
}

// Limiter owns the per-user and global tables. All methods are safe for
// concurrent use.
type Limiter struct {
	mu     sync.Mutex
	cfg    Config
	users  map[string]*userRecord
	global map[int64]int
	now    func() time.Time
}

func New(cfg Config) *Limiter {
	return &Limiter{
		cfg:    cfg,
		users:  make(map[string]*userRecord),
		global: make(map[int64]int),
		now:    time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (l *Limiter) WithClock(now func() time.Time) *Limiter {
	l.now = now
	return l
}

// CheckLimits evaluates both tiers for one request by userID. The caller must
// require both results to succeed.
func (l *Limiter) CheckLimits(userID string) domain.LimitCheck {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	return domain.LimitCheck{
		User:   l.checkUser(userID, now),
		Global: l.checkGlobal(now),
	}
}

func (l *Limiter) checkUser(userID string, now time.Time) domain.RateLimitResult {
	rec, ok := l.users[userID]
	if !ok || now.Sub(rec.windowStart) >= l.cfg.UserWindow {
		rec = &userRecord{windowStart: now}
		l.users[userID] = rec
	}

	reset := rec.windowStart.Add(l.cfg.UserWindow)
	if rec.count >= l.cfg.MaxPerUser {
		return domain.RateLimitResult{
			Success:           false,
			RemainingRequests: 0,
			ResetTime:         reset,
		}
	}

	rec.count++
	return domain.RateLimitResult{
		Success:           true,
		RemainingRequests: l.cfg.MaxPerUser - rec.count,
		ResetTime:         reset,
	}
}

// checkGlobal counts every attempt, admitted or not.
func (l *Limiter) checkGlobal(now time.Time) domain.RateLimitResult {
	bucket := DayBucket(now)
	l.global[bucket]++
	count := l.global[bucket]

	for key := range l.global {
		if key < bucket-1 {
			delete(l.global, key)
		}
	}

	return domain.RateLimitResult{
		Success:           count <= l.cfg.GlobalPerDay,
		RemainingRequests: max(0, l.cfg.GlobalPerDay-count),
		ResetTime:         time.UnixMilli((bucket + 1) * day.Milliseconds()).UTC(),
	}
}

// DayBucket returns floor(unix millis / one day).
func DayBucket(t time.Time) int64 {
	return t.UnixMilli() / day.Milliseconds()
}

// buckets returns the retained global bucket keys.
func (l *Limiter) buckets() []int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	keys := make([]int64, 0, len(l.global))
	for k := range l.global {
		keys = append(keys, k)
	}
	return keys
}
