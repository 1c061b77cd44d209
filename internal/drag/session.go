// Package drag tracks the lifecycle of a single drag gesture on a board.
package drag

import (
	"errors"
	"sync"

	"github.com/thenoetrevino/kanban/internal/types"
)

// Phase is the state of a drag session
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

var (
	ErrDragInProgress = errors.New("a drag is already in progress")
	ErrNotDragging    = errors.New("no drag in progress")
	ErrEmptyCardID    = errors.New("drag requires a card ID")
)

// Mover applies a drop. It reports whether anything changed.
type Mover interface {
	MoveCard(cardID types.CardID, dropTargetID string) bool
}

// Session is a two-state machine: Idle -> Dragging on Start, Dragging -> Idle
// on End. Ending without a drop target cancels the drag with no mutation.
// There is no other way to cancel.
type Session struct {
	mu           sync.Mutex
	phase        Phase
	activeCardID types.CardID
	mover        Mover
}

// NewSession creates an idle session that applies drops through mover
func NewSession(mover Mover) *Session {
	return &Session{mover: mover}
}

// Start begins dragging a card
func (s *Session) Start(cardID types.CardID) error {
	if cardID.IsZero() {
		return ErrEmptyCardID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == Dragging {
		return ErrDragInProgress
	}
	s.phase = Dragging
	s.activeCardID = cardID
	return nil
}

// End finishes the drag. An empty dropTargetID means the card was released
// outside every drop zone. The session is Idle afterwards in every case.
func (s *Session) End(dropTargetID string) (bool, error) {
	s.mu.Lock()
	if s.phase != Dragging {
		s.mu.Unlock()
		return false, ErrNotDragging
	}
	cardID := s.activeCardID
	s.phase = Idle
	s.activeCardID = ""
	s.mu.Unlock()

	if dropTargetID == "" {
		return false, nil
	}
	return s.mover.MoveCard(cardID, dropTargetID), nil
}

// Reset drops an active drag without applying it. The engine calls it when
// the board it was started on is replaced.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = Idle
	s.activeCardID = ""
}

// Phase returns the current phase
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// ActiveCard returns the card being dragged, or "" when idle
func (s *Session) ActiveCard() types.CardID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeCardID
}
