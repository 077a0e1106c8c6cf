package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mention_launcher/internal/domain"
)

func TestFormatRemaining(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		reset time.Time
		want  string
	}{
		{"past", now.Add(-time.Minute), "0m"},
		{"exact now", now, "0m"},
		{"rounds up seconds", now.Add(30 * time.Second), "1m"},
		{"just under an hour", now.Add(59 * time.Minute), "59m"},
		{"rounds up to an hour", now.Add(59*time.Minute + time.Second), "1h"},
		{"whole hours", now.Add(2 * time.Hour), "2h"},
		{"hours and minutes", now.Add(2*time.Hour + 5*time.Minute), "2h 5m"},
		{"full day", now.Add(24 * time.Hour), "24h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRemaining(tt.reset, now))
		})
	}
}

func TestTruncateAddress(t *testing.T) {
	assert.Equal(t, "0x1234...cdef", TruncateAddress("0x1234567890abcdef1234567890abcdef12cdef"))
	assert.Equal(t, "0x12345678", TruncateAddress("0x12345678"))
	assert.Equal(t, "", TruncateAddress(""))
}

func TestComposeReply(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	info := domain.TokenInfo{
		Name:        "Frog",
		Symbol:      "FROG",
		Description: "A frog that hatched",
	}
	user := domain.RateLimitResult{Success: true, RemainingRequests: 2, ResetTime: now.Add(24 * time.Hour)}
	global := domain.RateLimitResult{Success: true, RemainingRequests: 87, ResetTime: now.Add(12*time.Hour + 30*time.Minute)}

	got := ComposeReply(info, "https://tiny.one/frog", user, global, now)

	want := strings.Join([]string{
		`🎉 Congratulations! Your token "Frog" ( $FROG ) has been successfully hatched 🐣`,
		"",
		"📝 A frog that hatched",
		"",
		"Token Creator: anonymous",
		"",
		"🔗 Launch URL: https://tiny.one/frog",
		"",
		"ℹ️ Quick FYI:",
		"👤 You can launch 2 more tokens (refreshes in 24h)",
		"🌐 The network can handle 87 more launches (refreshes in 12h 30m)",
	}, "\n")
	assert.Equal(t, want, got)
	assert.Equal(t, got, ComposeReply(info, "https://tiny.one/frog", user, global, now))
}

func TestComposeReply_WithReceiver(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	info := domain.TokenInfo{
		Name:     "Frog",
		Symbol:   "FROG",
		Receiver: "0xAbCdEf0123456789aBcDeF0123456789AbCd9876",
	}

	got := ComposeReply(info, "u", domain.RateLimitResult{}, domain.RateLimitResult{}, now)

	assert.Contains(t, got, "Token Creator: 0xAbCd...9876")
	assert.NotContains(t, got, "anonymous")
}

func TestComposeReply_NameRenderedVerbatim(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	info := domain.TokenInfo{Name: `Rock "n" Roll \o/`, Symbol: "RNR"}

	got := ComposeReply(info, "u", domain.RateLimitResult{}, domain.RateLimitResult{}, now)

	assert.Contains(t, got, `Your token "Rock "n" Roll \o/" ( $RNR )`)
}
