// Package cli holds CLI test helpers. It is separate from testutil to avoid
// import cycles when packages that app depends on import testutil.
package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/backend"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/logging"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

// SetupCLITest creates an in-memory store and a live-mode App on top of it
func SetupCLITest(t *testing.T) (*database.Repository, *app.App) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	return repo, SetupCLIWithStore(t, repo)
}

// SetupCLIWithStore creates a live-mode App syncing against store
func SetupCLIWithStore(t *testing.T, store backend.Store) *app.App {
	t.Helper()
	return newTestApp(t, "live", app.WithStore(store))
}

// SetupSimulatedCLITest creates an App in simulated persistence mode
func SetupSimulatedCLITest(t *testing.T) *app.App {
	t.Helper()
	return newTestApp(t, "simulated")
}

func newTestApp(t *testing.T, mode string, opts ...app.Option) *app.App {
	t.Helper()
	cfg := config.Default()
	cfg.Persistence.Mode = mode
	cfg.ColorScheme = config.MonochromeColorScheme()

	opts = append(opts, app.WithLogger(logging.Discard()))
	a, err := app.New(context.Background(), cfg, opts...)
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.Close(ctx)
	})
	return a
}

// CreateTestBoard wraps testutil.CreateTestBoard for CLI tests
// Creates a board with default columns (To Do, In Progress, Done)
func CreateTestBoard(t *testing.T, repo *database.Repository, name string) models.Snapshot {
	t.Helper()
	return testutil.CreateTestBoard(t, repo, name)
}

// CreateTestCard creates a card directly in the store and returns it
func CreateTestCard(t *testing.T, repo *database.Repository, column models.Column, title string) models.Card {
	t.Helper()
	card, err := repo.CreateCard(context.Background(), models.Card{ColumnID: column.ID, Title: title})
	require.NoError(t, err)
	return card
}
