package domain

import "time"

// ReferenceType describes how a mention points at another post.
type ReferenceType string

const (
	ReferenceQuoted    ReferenceType = "quoted"
	ReferenceRepliedTo ReferenceType = "replied_to"
	ReferenceRetweeted ReferenceType = "retweeted"
)

type Reference struct {
	Type ReferenceType
	ID   string
}

// Media is an attachment on a post. URL is set for photos, PreviewURL for
// videos and animated gifs.
type Media struct {
	Key        string
	Type       string
	URL        string
	PreviewURL string
}

// ImageURL returns the best still image for the attachment.
func (m Media) ImageURL() string {
	if m.URL != "" {
		return m.URL
	}
	return m.PreviewURL
}

// Post is a minimal view of a post used as conversational context.
type Post struct {
	ID    string
	Text  string
	Media []Media
}

type User struct {
	ID             string
	Username       string
	Name           string
	CreatedAt      time.Time
	FollowersCount int
}

// Mention is an inbound post referencing the bot handle. It is never mutated
// after the poller produces it.
type Mention struct {
	ID             string
	AuthorID       string
	ConversationID string
	Text           string
	CreatedAt      time.Time
	References     []Reference
	Media          []Media
}

// MentionWithContext carries the side data the search page included with a
// mention. Missing entries are resolved by direct lookup when the mention is
// handled.
type MentionWithContext struct {
	Mention
	Referenced map[string]Post
	Author     *User
}
