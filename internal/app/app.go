// Package app wires configuration, storage, sync and the board engine into
// one container.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/kanban/internal/backend"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/engine"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/notifications"
	"github.com/thenoetrevino/kanban/internal/syncer"
)

// ErrNoDirectory is returned when board listing is requested without a store
var ErrNoDirectory = errors.New("no board store available in simulated mode")

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	// Store is nil in simulated mode unless one was injected
	Store backend.Store

	Bus    *events.Bus
	Sync   *syncer.Coordinator
	Engine *engine.Engine

	db *sql.DB
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}
	if ac.logger == nil {
		ac.logger = slog.Default()
	}

	mode, err := syncer.ParseMode(cfg.Persistence.Mode)
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg, Logger: ac.logger, Store: ac.store}
	if a.Store == nil && mode == syncer.ModeLive {
		if err := a.openStore(ctx); err != nil {
			return nil, err
		}
	}

	a.Bus = events.NewBus()
	syncOpts := []syncer.Option{
		syncer.WithMode(mode),
		syncer.WithLogger(ac.logger),
		syncer.WithPublisher(a.Bus),
		syncer.WithMaxInFlight(cfg.Sync.MaxInFlight),
		syncer.WithCallTimeout(cfg.Sync.CallTimeout),
	}
	if ac.notes != nil {
		syncOpts = append(syncOpts, syncer.WithNotifications(ac.notes))
	}

	var b backend.Backend
	if a.Store != nil {
		b = a.Store
	}
	a.Sync, err = syncer.New(b, syncOpts...)
	if err != nil {
		a.closeDB()
		return nil, err
	}

	a.Engine = engine.New(b, a.Sync, engine.WithBus(a.Bus), engine.WithLogger(ac.logger))
	return a, nil
}

func (a *App) openStore(ctx context.Context) error {
	switch a.Config.Backend.Kind {
	case config.BackendHTTP:
		client, err := backend.NewHTTPClient(a.Config.Backend.URL, &http.Client{Timeout: 0})
		if err != nil {
			return err
		}
		a.Store = client
	default:
		db, err := database.InitDB(ctx, a.Config.Backend.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		a.db = db
		a.Store = database.NewRepository(db)
	}
	return nil
}

// Directory returns the board directory, or ErrNoDirectory when none exists
func (a *App) Directory() (backend.Directory, error) {
	if a.Store == nil {
		return nil, ErrNoDirectory
	}
	return a.Store, nil
}

// Notifications returns the notification center of the sync coordinator
func (a *App) Notifications() *notifications.Center {
	return a.Sync.Notifications()
}

// Close waits for pending sync calls and releases resources
func (a *App) Close(ctx context.Context) error {
	err := a.Sync.Close(ctx)
	a.Bus.Close()
	a.closeDB()
	return err
}

func (a *App) closeDB() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.Logger.Error("error closing db", "error", err)
		}
		a.db = nil
	}
}
