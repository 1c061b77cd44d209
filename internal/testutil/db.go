package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/models"
)

// SetupTestRepo creates a migrated in-memory database closed at cleanup
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return database.NewRepository(db)
}

// CreateTestBoard creates a board with the default columns (To Do, In
// Progress, Done) and returns its snapshot
func CreateTestBoard(t *testing.T, repo *database.Repository, name string) models.Snapshot {
	t.Helper()
	ctx := context.Background()
	b, err := repo.CreateBoard(ctx, models.Board{Name: name})
	require.NoError(t, err)
	snap, err := repo.GetBoard(ctx, b.ID)
	require.NoError(t, err)
	return snap
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int { return &v }

// SampleSnapshot is a small board with three columns: To Do (a, b, c),
// In Progress (x) and an empty Done column with a WIP limit of 1 on
// In Progress
func SampleSnapshot() models.Snapshot {
	return models.Snapshot{
		Board: models.Board{ID: "board-1", Name: "Sample"},
		Columns: []models.Column{
			{ID: "todo", BoardID: "board-1", Name: "To Do", Order: 0},
			{ID: "doing", BoardID: "board-1", Name: "In Progress", Order: 1, WipLimit: IntPtr(1)},
			{ID: "done", BoardID: "board-1", Name: "Done", Order: 2, IsDone: true},
		},
		Cards: []models.Card{
			{ID: "a", ColumnID: "todo", Title: "A", Priority: models.PriorityLow, Order: 0},
			{ID: "b", ColumnID: "todo", Title: "B", Priority: models.PriorityMedium, Order: 1},
			{ID: "c", ColumnID: "todo", Title: "C", Priority: models.PriorityHigh, Order: 2},
			{ID: "x", ColumnID: "doing", Title: "X", Priority: models.PriorityUrgent, Order: 0},
		},
	}
}
