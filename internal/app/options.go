package app

import (
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/backend"
	"github.com/thenoetrevino/kanban/internal/notifications"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	store  backend.Store
	logger *slog.Logger
	notes  *notifications.Center
}

// WithStore uses store instead of the backend named in the config
func WithStore(store backend.Store) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithNotifications sets the notification center sync outcomes go to
func WithNotifications(center *notifications.Center) Option {
	return func(cfg *appConfig) {
		cfg.notes = center
	}
}
