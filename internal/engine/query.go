package engine

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/notifications"
	"github.com/thenoetrevino/kanban/internal/syncer"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Loaded reports whether a board has been loaded
func (e *Engine) Loaded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loaded
}

// Board returns the loaded board's metadata
func (e *Engine) Board() models.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Board()
}

// Columns returns the columns sorted by order
func (e *Engine) Columns() []models.Column {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Columns()
}

// Column returns one column
func (e *Engine) Column(id types.ColumnID) (models.Column, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Column(id)
}

// CardsByColumn returns a column's cards sorted by order
func (e *Engine) CardsByColumn(id types.ColumnID) []models.Card {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.CardsByColumn(id)
}

// Card returns one card
func (e *Engine) Card(id types.CardID) (models.Card, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Card(id)
}

// WipExceeded reports whether a column holds more cards than its WIP limit.
// Unknown columns are never exceeded.
func (e *Engine) WipExceeded(id types.ColumnID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	col, ok := e.state.Column(id)
	if !ok {
		return false
	}
	return board.Exceeded(col, e.state.CardCount(id))
}

// Snapshot returns a deep copy of the whole board
func (e *Engine) Snapshot() models.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Snapshot()
}

// Subscribe registers for change events; call the returned func to stop
func (e *Engine) Subscribe(buffer int) (<-chan events.Event, func()) {
	return e.bus.Subscribe(buffer)
}

// Notifications returns the center sync outcomes are reported to
func (e *Engine) Notifications() *notifications.Center {
	return e.sync.Notifications()
}

// SyncStatus returns the coordinator's view of backend health
func (e *Engine) SyncStatus() syncer.Status {
	return e.sync.Status()
}

// Drain waits for every pending backend call
func (e *Engine) Drain(ctx context.Context) error {
	return e.sync.Drain(ctx)
}
