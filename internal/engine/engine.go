// Package engine is the single entry point for reading and mutating a board.
//
// Every mutation validates its input, applies the change to the in-memory
// board, restores gap-free card orders in each affected column and then
// hands the change to the sync coordinator without waiting for it. The
// engine is safe for concurrent use.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/kanban/internal/backend"
	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/drag"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/notifications"
	"github.com/thenoetrevino/kanban/internal/syncer"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Engine owns the state of one board at a time
type Engine struct {
	mu     sync.Mutex
	state  *board.State
	loaded bool

	backend backend.Backend
	sync    *syncer.Coordinator
	bus     *events.Bus
	drag    *drag.Session
	newID   func() string
	logger  *slog.Logger
}

var (
	_ drag.Mover        = (*Engine)(nil)
	_ syncer.Reconciler = (*Engine)(nil)
)

// New creates an engine that loads boards from b and mirrors mutations
// through coord. b may be nil when coord runs in simulated mode.
func New(b backend.Backend, coord *syncer.Coordinator, opts ...Option) *Engine {
	e := &Engine{
		state:   board.NewState(),
		backend: b,
		sync:    coord,
		newID:   defaultID,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.bus == nil {
		e.bus = events.NewBus()
	}
	e.drag = drag.NewSession(e)
	coord.SetReconciler(e)
	return e
}

// LoadBoard replaces the whole state with the backend's copy of boardID. In
// simulated mode the board is seeded with the default columns instead.
func (e *Engine) LoadBoard(ctx context.Context, boardID types.BoardID) error {
	var snap models.Snapshot
	if e.sync.Mode() == syncer.ModeSimulated {
		snap = e.seed(boardID)
	} else {
		var err error
		snap, err = e.backend.GetBoard(ctx, boardID)
		if err != nil {
			return fmt.Errorf("failed to load board %s: %w", boardID, err)
		}
	}

	e.mu.Lock()
	e.state = board.NewState()
	e.state.SetBoard(snap.Board)
	e.state.ApplyColumnSet(snap.Columns)
	// cards of unknown columns are dropped and orders are renormalized so
	// a sparse backend copy still yields a consistent board
	cards := make([]models.Card, 0, len(snap.Cards))
	for _, c := range snap.Cards {
		if _, ok := e.state.Column(c.ColumnID); ok {
			cards = append(cards, c)
		}
	}
	e.state.ApplyCardSet(cards)
	for _, col := range e.state.Columns() {
		e.state.PutCards(board.Normalize(e.state.CardsByColumn(col.ID), col.ID)...)
	}
	e.loaded = true
	e.mu.Unlock()
	// a drag started on the previous board must not land on this one
	e.drag.Reset()

	e.logger.Debug("board loaded", "board", boardID, "columns", len(snap.Columns), "cards", len(snap.Cards))
	e.publish(events.EventBoardLoaded, boardID)
	return nil
}

func (e *Engine) seed(boardID types.BoardID) models.Snapshot {
	snap := models.Snapshot{
		Board: models.Board{ID: boardID, Name: boardID.String()},
		Cards: []models.Card{},
	}
	for i, def := range models.DefaultColumns {
		snap.Columns = append(snap.Columns, models.Column{
			ID:      types.ColumnID(e.newID()),
			BoardID: boardID,
			Name:    def.Name,
			Color:   def.Color,
			Order:   i,
			IsDone:  def.IsDone,
		})
	}
	return snap
}

// AddColumn appends a column after the last one
func (e *Engine) AddColumn(in ColumnInput) (models.Column, error) {
	if err := validateColumn(in.Name, in.WipLimit); err != nil {
		return models.Column{}, err
	}

	e.mu.Lock()
	if !e.loaded {
		e.mu.Unlock()
		return models.Column{}, ErrNoBoard
	}
	col := models.Column{
		ID:       types.ColumnID(e.newID()),
		BoardID:  e.state.Board().ID,
		Name:     in.Name,
		Color:    in.Color,
		Order:    board.NextColumnOrder(e.state.Columns()),
		WipLimit: in.WipLimit,
		IsDone:   in.IsDone,
	}
	e.state.PutColumn(col)
	e.mu.Unlock()

	e.commit(events.EventColumnsChanged, syncer.CreateColumn(col))
	return col.Clone(), nil
}

// UpdateColumn overwrites a column's editable fields. Its order and board
// are kept.
func (e *Engine) UpdateColumn(column models.Column) (models.Column, error) {
	if err := validateColumn(column.Name, column.WipLimit); err != nil {
		return models.Column{}, err
	}

	e.mu.Lock()
	existing, ok := e.state.Column(column.ID)
	if !ok {
		e.mu.Unlock()
		return models.Column{}, fmt.Errorf("%w: %s", ErrColumnNotFound, column.ID)
	}
	column.BoardID = existing.BoardID
	column.Order = existing.Order
	e.state.PutColumn(column)
	e.mu.Unlock()

	e.commit(events.EventColumnsChanged, syncer.UpdateColumn(column))
	return column.Clone(), nil
}

// DeleteColumn removes a column and every card in it. The other columns
// keep their orders.
func (e *Engine) DeleteColumn(id types.ColumnID) error {
	e.mu.Lock()
	col, ok := e.state.Column(id)
	if !ok {
		e.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrColumnNotFound, id)
	}
	removed := e.state.RemoveColumn(id)
	e.mu.Unlock()

	e.logger.Debug("column deleted", "column", id, "cards_removed", len(removed))
	e.commit(events.EventColumnsChanged, syncer.DeleteColumn(col.BoardID, id))
	return nil
}

// AddCard appends a card to the end of a column. A WIP limit never blocks it.
func (e *Engine) AddCard(columnID types.ColumnID, in CardInput) (models.Card, error) {
	priority, err := validateCard(in.Title, in.Priority)
	if err != nil {
		return models.Card{}, err
	}

	e.mu.Lock()
	col, ok := e.state.Column(columnID)
	if !ok {
		e.mu.Unlock()
		return models.Card{}, fmt.Errorf("%w: %s", ErrColumnNotFound, columnID)
	}
	card := models.Card{
		ID:          types.CardID(e.newID()),
		ColumnID:    columnID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		Tags:        in.Tags,
		Assignees:   in.Assignees,
		DueDate:     in.DueDate,
		Order:       e.state.CardCount(columnID),
	}
	e.state.PutCards(card)
	if board.Exceeded(col, e.state.CardCount(columnID)) {
		e.logger.Debug("wip limit exceeded", "column", columnID, "limit", *col.WipLimit)
	}
	e.mu.Unlock()

	e.commit(events.EventCardsChanged, syncer.CreateCard(col.BoardID, card))
	return card.Clone(), nil
}

// UpdateCard overwrites a card's content. Its column and order are kept.
func (e *Engine) UpdateCard(card models.Card) (models.Card, error) {
	priority, err := validateCard(card.Title, card.Priority)
	if err != nil {
		return models.Card{}, err
	}
	card.Priority = priority

	e.mu.Lock()
	existing, ok := e.state.Card(card.ID)
	if !ok {
		e.mu.Unlock()
		return models.Card{}, fmt.Errorf("%w: %s", ErrCardNotFound, card.ID)
	}
	card.ColumnID = existing.ColumnID
	card.Order = existing.Order
	e.state.PutCards(card)
	boardID := e.state.Board().ID
	e.mu.Unlock()

	e.commit(events.EventCardsChanged, syncer.UpdateCard(boardID, card))
	return card.Clone(), nil
}

// DeleteCard removes a card and renumbers the column it was in
func (e *Engine) DeleteCard(id types.CardID) error {
	e.mu.Lock()
	card, ok := e.state.Card(id)
	if !ok {
		e.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}
	e.state.RemoveCard(id)
	e.state.PutCards(board.Normalize(e.state.CardsByColumn(card.ColumnID), card.ColumnID)...)
	boardID := e.state.Board().ID
	e.mu.Unlock()

	e.commit(events.EventCardsChanged, syncer.DeleteCard(boardID, id))
	return nil
}

// MoveCard drops a card on a column (append) or on another card (insert
// before it). It reports false, and changes nothing, when the target cannot
// be resolved or the card would land where it already is.
func (e *Engine) MoveCard(cardID types.CardID, dropTargetID string) bool {
	e.mu.Lock()
	p := board.Resolve(e.state, cardID, dropTargetID)
	if p == nil {
		e.mu.Unlock()
		return false
	}
	changed := board.Splice(e.state, cardID, *p)
	e.state.PutCards(changed...)
	moved, _ := e.state.Card(cardID)
	boardID := e.state.Board().ID
	e.mu.Unlock()

	e.commit(events.EventCardsChanged, syncer.MoveCard(boardID, cardID, moved.ColumnID, moved.Order))
	return true
}

// DragStart begins dragging a card
func (e *Engine) DragStart(cardID types.CardID) error {
	e.mu.Lock()
	_, ok := e.state.Card(cardID)
	e.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
	}
	return e.drag.Start(cardID)
}

// DragEnd drops the dragged card on dropTargetID. An empty target cancels.
func (e *Engine) DragEnd(dropTargetID string) (bool, error) {
	return e.drag.End(dropTargetID)
}

// DragPhase returns the state of the drag session
func (e *Engine) DragPhase() drag.Phase {
	return e.drag.Phase()
}

// RemapColumn replaces a provisional column ID with the one the backend
// assigned
func (e *Engine) RemapColumn(from, to types.ColumnID) {
	e.mu.Lock()
	ok := e.state.RenameColumn(from, to)
	boardID := e.state.Board().ID
	e.mu.Unlock()
	if ok {
		e.logger.Debug("column id reassigned", "from", from, "to", to)
		e.publish(events.EventColumnsChanged, boardID)
	}
}

// RemapCard replaces a provisional card ID with the one the backend assigned
func (e *Engine) RemapCard(from, to types.CardID) {
	e.mu.Lock()
	ok := e.state.RenameCard(from, to)
	boardID := e.state.Board().ID
	e.mu.Unlock()
	if ok {
		e.logger.Debug("card id reassigned", "from", from, "to", to)
		e.publish(events.EventCardsChanged, boardID)
	}
}

// commit announces a local change and hands it to the coordinator
func (e *Engine) commit(t events.EventType, op syncer.Operation) {
	e.publish(t, op.BoardID)
	if err := e.sync.Submit(op); err != nil {
		// the change stays local, report it like a failed backend call
		e.logger.Warn("sync submit rejected", "op", op.Kind, "id", op.EntityID(), "error", err)
		e.sync.Notifications().Add(notifications.LevelWarning, op.Kind.Describe()+notifications.MockSuffix)
	}
}

func (e *Engine) publish(t events.EventType, boardID types.BoardID) {
	e.bus.Publish(events.Event{Type: t, BoardID: boardID})
}
