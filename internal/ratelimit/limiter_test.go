package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(clock *fakeClock) *Limiter {
	return New(Config{
		MaxPerUser:   3,
		UserWindow:   time.Hour,
		GlobalPerDay: 100,
	}).WithClock(clock.now)
}

func TestCheckLimits_UserWindow(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	l := newTestLimiter(clock)
	start := clock.t

	for _, want := range []int{2, 1, 0} {
		res := l.CheckLimits("alice")
		require.True(t, res.User.Success)
		assert.Equal(t, want, res.User.RemainingRequests)
		assert.Equal(t, start.Add(time.Hour), res.User.ResetTime)
		clock.advance(time.Minute)
	}

	res := l.CheckLimits("alice")
	assert.False(t, res.User.Success)
	assert.Equal(t, 0, res.User.RemainingRequests)
	assert.Equal(t, start.Add(time.Hour), res.User.ResetTime)
	assert.False(t, res.Allowed())

	clock.t = start.Add(time.Hour)
	res = l.CheckLimits("alice")
	assert.True(t, res.User.Success)
	assert.Equal(t, 2, res.User.RemainingRequests)
	assert.Equal(t, clock.t.Add(time.Hour), res.User.ResetTime)
}

func TestCheckLimits_FailureDoesNotExtendWindow(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	l := newTestLimiter(clock)

	for i := 0; i < 10; i++ {
		l.CheckLimits("bob")
	}

	l.mu.Lock()
	rec := l.users["bob"]
	l.mu.Unlock()
	assert.Equal(t, 3, rec.count)
}

func TestCheckLimits_UsersAreIndependent(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	l := newTestLimiter(clock)

	for i := 0; i < 3; i++ {
		l.CheckLimits("alice")
	}

	res := l.CheckLimits("bob")
	assert.True(t, res.User.Success)
	assert.Equal(t, 2, res.User.RemainingRequests)
}

func TestCheckLimits_GlobalCountsEveryAttempt(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	l := New(Config{MaxPerUser: 1, UserWindow: time.Hour, GlobalPerDay: 3}).WithClock(clock.now)

	l.CheckLimits("alice")
	res := l.CheckLimits("alice")
	require.False(t, res.User.Success)
	assert.True(t, res.Global.Success)
	assert.Equal(t, 1, res.Global.RemainingRequests)

	res = l.CheckLimits("bob")
	assert.True(t, res.Global.Success)
	assert.Equal(t, 0, res.Global.RemainingRequests)

	res = l.CheckLimits("carol")
	assert.False(t, res.Global.Success)
	assert.Equal(t, 0, res.Global.RemainingRequests)
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), res.Global.ResetTime)
}

func TestCheckLimits_GlobalBucketEviction(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	l := newTestLimiter(clock)
	first := DayBucket(clock.t)

	l.CheckLimits("a")
	clock.advance(24 * time.Hour)
	l.CheckLimits("b")
	assert.ElementsMatch(t, []int64{first, first + 1}, l.buckets())

	clock.advance(48 * time.Hour)
	l.CheckLimits("c")
	assert.ElementsMatch(t, []int64{first + 3}, l.buckets())
}

func TestCheckLimits_GlobalResetsNextDay(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC)}
	l := New(Config{MaxPerUser: 10, UserWindow: time.Hour, GlobalPerDay: 1}).WithClock(clock.now)

	assert.True(t, l.CheckLimits("a").Global.Success)
	assert.False(t, l.CheckLimits("b").Global.Success)

	clock.advance(2 * time.Minute)
	assert.True(t, l.CheckLimits("c").Global.Success)
}

func TestDayBucket(t *testing.T) {
	assert.Equal(t, int64(0), DayBucket(time.UnixMilli(86399999)))
	assert.Equal(t, int64(1), DayBucket(time.UnixMilli(86400000)))
}

func TestCheckLimits_ZeroQuotasDenyEverything(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	l := New(Config{UserWindow: time.Hour}).WithClock(clock.now)

	res := l.CheckLimits("alice")

	assert.False(t, res.User.Success)
	assert.Equal(t, 0, res.User.RemainingRequests)
	assert.Equal(t, clock.t.Add(time.Hour), res.User.ResetTime)
	assert.False(t, res.Global.Success)
	assert.Equal(t, 0, res.Global.RemainingRequests)
	assert.False(t, res.Allowed())
}
