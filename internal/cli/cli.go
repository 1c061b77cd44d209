// Package cli holds what the kanban subcommands share: the application
// context, flag helpers, output formatting, exit codes and board rendering.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/engine"
	"github.com/thenoetrevino/kanban/internal/notifications"
	"github.com/thenoetrevino/kanban/internal/types"
)

// drainTimeout bounds how long a command waits for its sync calls
const drainTimeout = 30 * time.Second

type appKey struct{}

// WithApp returns a context carrying an already built App. Commands executed
// with it use that App instead of loading the config, and leave it open.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// CLI represents the CLI application context
type CLI struct {
	App   *app.App
	owned bool
}

// NewCLI returns the App injected with WithApp, or builds one from the
// user's configuration
func NewCLI(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	a, err := app.New(ctx, cfg, app.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return &CLI{App: a, owned: true}, nil
}

// Engine returns the board engine
func (c *CLI) Engine() *engine.Engine {
	return c.App.Engine
}

// LoadBoard loads the board every subsequent engine call works on
func (c *CLI) LoadBoard(ctx context.Context, id types.BoardID) error {
	return c.App.Engine.LoadBoard(ctx, id)
}

// Finish waits for the sync calls of the command and returns the
// notifications they produced
func (c *CLI) Finish(ctx context.Context) ([]notifications.Notification, error) {
	drainCtx, cancel := context.WithTimeout(ctx, drainTimeout)
	defer cancel()
	err := c.App.Engine.Drain(drainCtx)
	return c.App.Notifications().Drain(), err
}

// Close cleans up CLI resources. An injected App is left to its owner.
func (c *CLI) Close(ctx context.Context) error {
	if !c.owned {
		return nil
	}
	return c.App.Close(ctx)
}

// OpenBoard creates the CLI context for cmd and loads the board named by its
// --board flag. The caller closes the returned CLI.
func OpenBoard(cmd *cobra.Command) (*CLI, error) {
	boardID, err := GetBoardID(cmd)
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	c, err := NewCLI(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.LoadBoard(ctx, boardID); err != nil {
		_ = c.Close(ctx)
		return nil, err
	}
	return c, nil
}
