package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// setupTestDB opens a migrated in-memory database closed at test cleanup
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(setupTestDB(t))
}

// createTestBoard creates a board with the default columns and returns its snapshot
func createTestBoard(t *testing.T, repo *Repository) models.Snapshot {
	t.Helper()
	ctx := context.Background()
	b, err := repo.CreateBoard(ctx, models.Board{Name: "Test Board"})
	require.NoError(t, err)
	snap, err := repo.GetBoard(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, snap.Columns, 3)
	return snap
}

func createTestCard(t *testing.T, repo *Repository, columnID types.ColumnID, title string) models.Card {
	t.Helper()
	card, err := repo.CreateCard(context.Background(), models.Card{ColumnID: columnID, Title: title})
	require.NoError(t, err)
	return card
}

// columnCards returns the titles of a column's cards in position order and
// asserts positions are 0..n-1
func columnCards(t *testing.T, repo *Repository, boardID types.BoardID, columnID types.ColumnID) []string {
	t.Helper()
	snap, err := repo.GetBoard(context.Background(), boardID)
	require.NoError(t, err)
	var titles []string
	for _, c := range snap.Cards {
		if c.ColumnID != columnID {
			continue
		}
		require.Equal(t, len(titles), c.Order, "card %q has position %d", c.Title, c.Order)
		titles = append(titles, c.Title)
	}
	return titles
}
