package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"mention_launcher/internal/domain"
)

// ComposeReply builds the launch announcement. The output depends only on its
// arguments.
func ComposeReply(info domain.TokenInfo, launchURL string, user, global domain.RateLimitResult, now time.Time) string {
	creator := "Token Creator: anonymous"
	if info.Receiver != "" {
		creator = "Token Creator: " + TruncateAddress(info.Receiver)
	}

	return strings.Join([]string{
		fmt.Sprintf("🎉 Congratulations! Your token \"%s\" ( $%s ) has been successfully hatched 🐣", info.Name, info.Symbol),
		"",
		"📝 " + info.Description,
		"",
		creator,
		"",
		"🔗 Launch URL: " + launchURL,
		"",
		"ℹ️ Quick FYI:",
		fmt.Sprintf("👤 You can launch %d more tokens (refreshes in %s)", user.RemainingRequests, FormatRemaining(user.ResetTime, now)),
		fmt.Sprintf("🌐 The network can handle %d more launches (refreshes in %s)", global.RemainingRequests, FormatRemaining(global.ResetTime, now)),
	}, "\n")
}

// TruncateAddress keeps the first 6 and last 4 characters.
func TruncateAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// FormatRemaining renders the time until reset rounded up to whole minutes:
// "45m", "2h", "2h 5m".
func FormatRemaining(reset, now time.Time) string {
	minutes := int(math.Ceil(reset.Sub(now).Minutes()))
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	rest := minutes % 60
	if rest > 0 {
		return fmt.Sprintf("%dh %dm", hours, rest)
	}
	return fmt.Sprintf("%dh", hours)
}
