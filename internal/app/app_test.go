package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/engine"
	"github.com/thenoetrevino/kanban/internal/logging"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/syncer"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Backend.DBPath = filepath.Join(t.TempDir(), "kanban.db")
	return cfg
}

func TestNew_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, sqliteConfig(t), WithLogger(logging.Discard()))
	require.NoError(t, err)
	defer func() { _ = a.Close(ctx) }()

	dir, err := a.Directory()
	require.NoError(t, err)
	b, err := dir.CreateBoard(ctx, models.Board{Name: "Launch"})
	require.NoError(t, err)

	require.NoError(t, a.Engine.LoadBoard(ctx, b.ID))
	todo := a.Engine.Columns()[0]
	card, err := a.Engine.AddCard(todo.ID, engine.CardInput{Title: "Write docs"})
	require.NoError(t, err)
	require.NoError(t, a.Engine.Drain(ctx))

	snap, err := a.Store.GetBoard(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, snap.Cards, 1)
	assert.Equal(t, card.ID, snap.Cards[0].ID)
	assert.Equal(t, syncer.ModeLive, a.Sync.Mode())
}

func TestNew_SimulatedHasNoDirectory(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Persistence.Mode = "simulated"

	a, err := New(ctx, cfg, WithLogger(logging.Discard()))
	require.NoError(t, err)
	defer func() { _ = a.Close(ctx) }()

	_, err = a.Directory()
	assert.ErrorIs(t, err, ErrNoDirectory)
	require.NoError(t, a.Engine.LoadBoard(ctx, "demo"))
	assert.Len(t, a.Engine.Columns(), 3)
}

func TestNew_InjectedStore(t *testing.T) {
	ctx := context.Background()
	repo := testutil.SetupTestRepo(t)

	a, err := New(ctx, config.Default(), WithStore(repo), WithLogger(logging.Discard()))
	require.NoError(t, err)
	defer func() { _ = a.Close(ctx) }()

	assert.Same(t, repo, a.Store)
}

func TestNew_HTTPBackendValidatesURL(t *testing.T) {
	cfg := config.Default()
	cfg.Backend.Kind = config.BackendHTTP
	cfg.Backend.URL = "not a url"

	_, err := New(context.Background(), cfg, WithLogger(logging.Discard()))
	assert.Error(t, err)
}

func TestNew_UnknownMode(t *testing.T) {
	cfg := config.Default()
	cfg.Persistence.Mode = "offline"
	_, err := New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, sqliteConfig(t), WithLogger(logging.Discard()))
	require.NoError(t, err)

	assert.NoError(t, a.Close(ctx))
}
