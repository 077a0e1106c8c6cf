package domain

import "time"

// RateLimitResult is the outcome of one limiter tier.
type RateLimitResult struct {
	Success           bool
	RemainingRequests int
	ResetTime         time.Time
}

type LimitCheck struct {
	User   RateLimitResult
	Global RateLimitResult
}

// Allowed reports whether both tiers admitted the request.
func (c LimitCheck) Allowed() bool {
	return c.User.Success && c.Global.Success
}

// DescriptionAndContext is the prompt material extracted from a mention.
type DescriptionAndContext struct {
	Description string
	Context     string
	ImageURLs   []string
}

// TokenInfo is what the generator produces for a launch. Receiver is empty
// when the mention did not name a wallet.
type TokenInfo struct {
	Name        string
	Symbol      string
	Description string
	MetadataURI string
	Receiver    string
}

// Launch is the record of one hatched token.
type Launch struct {
	ID             int64     `db:"id"`
	MentionID      string    `db:"mention_id"`
	ConversationID string    `db:"conversation_id"`
	AuthorID       string    `db:"author_id"`
	TokenAddress   string    `db:"token_address"`
	Name           string    `db:"name"`
	Symbol         string    `db:"symbol"`
	Description    string    `db:"description"`
	MetadataURI    string    `db:"metadata_uri"`
	Receiver       *string   `db:"receiver"`
	LaunchURL      string    `db:"launch_url"`
	LaunchedAt     time.Time `db:"launched_at"`
}

// Migration is the record of one migrated token.
type Migration struct {
	TokenAddress string
	TxHash       string
	MigratedAt   time.Time
}
