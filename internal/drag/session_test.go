package drag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/types"
)

type recordingMover struct {
	calls  []string
	result bool
}

func (m *recordingMover) MoveCard(cardID types.CardID, dropTargetID string) bool {
	m.calls = append(m.calls, cardID.String()+"->"+dropTargetID)
	return m.result
}

func TestSession_StartAndDrop(t *testing.T) {
	mover := &recordingMover{result: true}
	s := NewSession(mover)
	assert.Equal(t, Idle, s.Phase())

	require.NoError(t, s.Start("card-1"))
	assert.Equal(t, Dragging, s.Phase())
	assert.Equal(t, types.CardID("card-1"), s.ActiveCard())

	moved, err := s.End("col-2")
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, []string{"card-1->col-2"}, mover.calls)
	assert.Equal(t, Idle, s.Phase())
	assert.Empty(t, s.ActiveCard())
}

func TestSession_DropOutsideCancels(t *testing.T) {
	mover := &recordingMover{result: true}
	s := NewSession(mover)
	require.NoError(t, s.Start("card-1"))

	moved, err := s.End("")

	require.NoError(t, err)
	assert.False(t, moved)
	assert.Empty(t, mover.calls)
	assert.Equal(t, Idle, s.Phase())
}

func TestSession_NoopDropStillReturnsToIdle(t *testing.T) {
	mover := &recordingMover{result: false}
	s := NewSession(mover)
	require.NoError(t, s.Start("card-1"))

	moved, err := s.End("card-1")

	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, Idle, s.Phase())
}

func TestSession_InvalidTransitions(t *testing.T) {
	s := NewSession(&recordingMover{})

	_, err := s.End("col")
	assert.ErrorIs(t, err, ErrNotDragging)

	assert.ErrorIs(t, s.Start(""), ErrEmptyCardID)

	require.NoError(t, s.Start("a"))
	assert.ErrorIs(t, s.Start("b"), ErrDragInProgress)
	assert.Equal(t, types.CardID("a"), s.ActiveCard(), "second start must not replace the active card")
}

func TestSession_ResetDropsActiveDrag(t *testing.T) {
	mover := &recordingMover{}
	s := NewSession(mover)
	require.NoError(t, s.Start("a"))

	s.Reset()

	assert.Equal(t, Idle, s.Phase())
	assert.Empty(t, s.ActiveCard())
	_, err := s.End("col")
	assert.ErrorIs(t, err, ErrNotDragging)
	require.NoError(t, s.Start("b"), "a new drag can start after reset")
}
