package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Notifier receives fire-and-forget user notifications. Implementations
// must not block the caller.
type Notifier interface {
	Notify(kind Kind, message string)
}

// Discard drops every notification.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(Kind, string) {}

const (
	DefaultTTL      = 4 * time.Second
	DefaultCapacity = 50
)

// Feed keeps the most recent notifications in memory until they expire.
type Feed struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	now      func() time.Time
	items    []Notification
}

// NewFeed creates a feed. Non-positive ttl or capacity fall back to the defaults.
func NewFeed(ttl time.Duration, capacity int) *Feed {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Feed{ttl: ttl, capacity: capacity, now: time.Now}
}

func (f *Feed) Notify(kind Kind, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	f.items = append(f.items, Notification{
		ID:        uuid.New(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(f.ttl),
	})
	if over := len(f.items) - f.capacity; over > 0 {
		f.items = append([]Notification(nil), f.items[over:]...)
	}
}

// Recent returns live notifications, oldest first, and forgets expired ones.
func (f *Feed) Recent() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	live := f.items[:0]
	for _, n := range f.items {
		if now.Before(n.ExpiresAt) {
			live = append(live, n)
		}
	}
	f.items = live

	out := make([]Notification, len(live))
	copy(out, live)
	return out
}
