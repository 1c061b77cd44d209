package syncer

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/notifications"
)

// DefaultMaxInFlight bounds concurrent backend calls when no limit is set
const DefaultMaxInFlight = 8

// Option is a functional option for configuring a Coordinator
type Option func(*Coordinator)

// WithMode sets the persistence mode
func WithMode(mode Mode) Option {
	return func(c *Coordinator) {
		c.mode = mode
	}
}

// WithLogger sets the logger used for degraded calls
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithNotifications sets where "(mock)" notifications are recorded
func WithNotifications(center *notifications.Center) Option {
	return func(c *Coordinator) {
		if center != nil {
			c.notes = center
		}
	}
}

// WithPublisher sets the change feed that receives status transitions
func WithPublisher(p events.Publisher) Option {
	return func(c *Coordinator) {
		c.publisher = p
	}
}

// WithMaxInFlight bounds how many backend calls run at once
func WithMaxInFlight(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.maxInFlight = int64(n)
		}
	}
}

// WithCallTimeout gives every backend call a deadline. Zero, the default,
// lets calls run until the backend answers.
func WithCallTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		c.callTimeout = d
	}
}
