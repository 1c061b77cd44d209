// Package notifications records the transient, non-blocking messages shown to
// the user after an operation, such as "Card moved (mock)".
package notifications

import (
	"strings"
	"sync"
	"time"
)

// Level represents the severity/type of a notification.
type Level int

const (
	// LevelInfo is a plain success
	LevelInfo Level = iota
	// LevelWarning is a success that was only applied locally
	LevelWarning
	// LevelError is a failure the user should know about
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// MockSuffix marks messages for operations that only succeeded locally
const MockSuffix = " (mock)"

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   Level
	Message string
	At      time.Time
}

// Mock reports whether the notification describes a local-only success
func (n Notification) Mock() bool {
	return strings.HasSuffix(n.Message, MockSuffix)
}

// Center collects notifications. It is safe for concurrent use because sync
// calls report their outcome from their own goroutines.
type Center struct {
	mu            sync.Mutex
	notifications []Notification
	limit         int
}

// DefaultLimit is the number of notifications kept before the oldest are dropped
const DefaultLimit = 50

// NewCenter creates a Center keeping at most limit notifications
func NewCenter(limit int) *Center {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Center{limit: limit}
}

// Add adds a new notification with the specified level and message.
func (c *Center) Add(level Level, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = append(c.notifications, Notification{
		Level:   level,
		Message: message,
		At:      time.Now(),
	})
	if over := len(c.notifications) - c.limit; over > 0 {
		c.notifications = append([]Notification(nil), c.notifications[over:]...)
	}
}

// Clear removes all notifications.
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = nil
}

// ClearLevel removes all notifications of a specific level.
func (c *Center) ClearLevel(level Level) {
	c.mu.Lock()
	defer c.mu.Unlock()
	filtered := []Notification{}
	for _, n := range c.notifications {
		if n.Level != level {
			filtered = append(filtered, n)
		}
	}
	c.notifications = filtered
}

// All returns a copy of all current notifications, oldest first.
func (c *Center) All() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Notification(nil), c.notifications...)
}

// Drain returns all notifications and clears the center.
func (c *Center) Drain() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.notifications
	c.notifications = nil
	return out
}

// HasAny returns true if there are any notifications.
func (c *Center) HasAny() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.notifications) > 0
}
