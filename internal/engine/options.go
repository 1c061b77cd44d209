package engine

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/thenoetrevino/kanban/internal/events"
)

// Option is a functional option for configuring an Engine
type Option func(*Engine)

// WithBus sets the change feed the engine publishes to
func WithBus(bus *events.Bus) Option {
	return func(e *Engine) {
		if bus != nil {
			e.bus = bus
		}
	}
}

// WithIDGenerator replaces the provisional ID source
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// WithLogger sets the engine logger
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func defaultID() string { return uuid.NewString() }
