package board

import (
	"testing"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func intPtr(v int) *int { return &v }

// newTestState builds a state with the "To Do" / "In Progress" board used by
// most scenarios: To Do = [A, B], In Progress (WIP 3) = [C]
func newTestState(t *testing.T) *State {
	t.Helper()
	s := NewState()
	s.SetBoard(models.Board{ID: "board-1", Name: "Test Board"})
	s.ApplyColumnSet([]models.Column{
		{ID: "todo", BoardID: "board-1", Name: "To Do", Order: 0},
		{ID: "doing", BoardID: "board-1", Name: "In Progress", Order: 1, WipLimit: intPtr(3)},
	})
	s.ApplyCardSet([]models.Card{
		{ID: "A", ColumnID: "todo", Title: "A", Order: 0},
		{ID: "B", ColumnID: "todo", Title: "B", Order: 1},
		{ID: "C", ColumnID: "doing", Title: "C", Order: 0},
	})
	return s
}

func cardIDs(cards []models.Card) []types.CardID {
	ids := make([]types.CardID, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

func orders(cards []models.Card) []int {
	out := make([]int, len(cards))
	for i, c := range cards {
		out[i] = c.Order
	}
	return out
}
