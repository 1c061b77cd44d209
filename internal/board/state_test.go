package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

func TestColumns_SortedByOrder(t *testing.T) {
	s := NewState()
	s.ApplyColumnSet([]models.Column{
		{ID: "c3", Order: 2},
		{ID: "c1", Order: 0},
		{ID: "c2", Order: 1},
	})

	cols := s.Columns()
	require.Len(t, cols, 3)
	assert.Equal(t, types.ColumnID("c1"), cols[0].ID)
	assert.Equal(t, types.ColumnID("c2"), cols[1].ID)
	assert.Equal(t, types.ColumnID("c3"), cols[2].ID)
}

func TestCardsByColumn_SortedByOrder(t *testing.T) {
	s := NewState()
	s.ApplyColumnSet([]models.Column{{ID: "col"}})
	s.ApplyCardSet([]models.Card{
		{ID: "z", ColumnID: "col", Order: 1},
		{ID: "y", ColumnID: "col", Order: 0},
		{ID: "other", ColumnID: "elsewhere", Order: 0},
	})

	assert.Equal(t, []types.CardID{"y", "z"}, cardIDs(s.CardsByColumn("col")))
	assert.Empty(t, s.CardsByColumn("missing"))
}

func TestApplySets_Idempotent(t *testing.T) {
	s := newTestState(t)
	before := s.Snapshot()

	s.ApplyColumnSet(before.Columns)
	s.ApplyCardSet(before.Cards)
	s.ApplyColumnSet(before.Columns)
	s.ApplyCardSet(before.Cards)

	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("snapshot changed after re-applying sets (-before +after):\n%s", diff)
	}
}

func TestApplyCardSet_ReplacesWholesale(t *testing.T) {
	s := newTestState(t)
	s.ApplyCardSet([]models.Card{{ID: "only", ColumnID: "todo"}})

	_, ok := s.Card("A")
	assert.False(t, ok)
	assert.Equal(t, 1, s.CardCount("todo"))
	assert.Equal(t, 0, s.CardCount("doing"))
}

func TestReturnedValues_AreCopies(t *testing.T) {
	s := newTestState(t)
	s.PutCards(models.Card{ID: "T", ColumnID: "todo", Order: 2, Tags: []models.Tag{{Name: "bug"}}})

	card, ok := s.Card("T")
	require.True(t, ok)
	card.Tags[0].Name = "mutated"
	card.Title = "mutated"

	again, _ := s.Card("T")
	assert.Equal(t, "bug", again.Tags[0].Name)
	assert.Empty(t, again.Title)

	col, _ := s.Column("doing")
	*col.WipLimit = 99
	col2, _ := s.Column("doing")
	assert.Equal(t, 3, *col2.WipLimit)
}

func TestRemoveColumn_RemovesItsCards(t *testing.T) {
	s := newTestState(t)

	removed := s.RemoveColumn("todo")

	assert.Equal(t, []types.CardID{"A", "B"}, removed)
	_, ok := s.Column("todo")
	assert.False(t, ok)
	assert.Len(t, s.Cards(), 1)
}

func TestRenameColumn_MovesCardReferences(t *testing.T) {
	s := newTestState(t)

	require.True(t, s.RenameColumn("todo", "todo-server"))

	_, ok := s.Column("todo")
	assert.False(t, ok)
	col, ok := s.Column("todo-server")
	require.True(t, ok)
	assert.Equal(t, "To Do", col.Name)
	assert.Equal(t, []types.CardID{"A", "B"}, cardIDs(s.CardsByColumn("todo-server")))

	assert.False(t, s.RenameColumn("missing", "x"))
}

func TestRenameCard(t *testing.T) {
	s := newTestState(t)

	require.True(t, s.RenameCard("A", "A-1"))
	assert.Equal(t, []types.CardID{"A-1", "B"}, cardIDs(s.CardsByColumn("todo")))
	assert.False(t, s.RenameCard("A", "A-2"))
}
