package domain

import "time"

// PollStats holds statistics about a poll cycle.
type PollStats struct {
	Fetched    int
	Enqueued   int
	Duplicates int
	NewestID   string
	Duration   time.Duration
}

// Outcome is how the handler disposed of a mention.
type Outcome string

const (
	OutcomeLaunched    Outcome = "launched"
	OutcomeRateLimited Outcome = "rate_limited"
	OutcomeRejected    Outcome = "rejected"
)
