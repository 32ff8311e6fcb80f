package storefront

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a notification.
type Level string

// Notification levels.
const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is a non-blocking, auto-dismissing user message. Notifications
// expire after the feed's TTL; no failure is fatal to the session.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Feed holds a session's notifications. Expired entries are pruned whenever
// the feed is read.
type Feed struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries []Notification
	now     func() time.Time
}

// NewFeed creates a notification feed whose entries expire after ttl.
func NewFeed(ttl time.Duration) *Feed {
	return &Feed{
		ttl: ttl,
		now: time.Now,
	}
}

// Push appends a notification to the feed.
func (f *Feed) Push(level Level, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = append(f.entries, Notification{
		ID:        uuid.New(),
		Level:     level,
		Message:   message,
		CreatedAt: f.now(),
	})
}

// Active returns the notifications that have not expired yet, oldest first,
// and drops the rest.
func (f *Feed) Active() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	cutoff := f.now().Add(-f.ttl)

	kept := f.entries[:0]
	for _, n := range f.entries {
		if n.CreatedAt.After(cutoff) {
			kept = append(kept, n)
		}
	}
	f.entries = kept

	out := make([]Notification, len(kept))
	copy(out, kept)
	return out
}
