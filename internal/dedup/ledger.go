// Package dedup tracks mention and conversation ids that have already been
// admitted to the launch queue.
package dedup

import "sync"

// Ledger is an in-memory set of seen ids. Entries never expire; the ledger
// lives as long as the process.
type Ledger struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewLedger() *Ledger {
	return &Ledger{seen: make(map[string]struct{})}
}

// Accept marks both ids seen and returns true iff neither was seen before.
// An empty conversationID is ignored.
func (l *Ledger) Accept(mentionID, conversationID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.seen[mentionID]; ok {
		return false
	}
	if conversationID != "" {
		if _, ok := l.seen[conversationID]; ok {
			return false
		}
		l.seen[conversationID] = struct{}{}
	}
	l.seen[mentionID] = struct{}{}
	return true
}

func (l *Ledger) has(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.seen[id]
	return ok
}

func (l *Ledger) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.seen)
}
