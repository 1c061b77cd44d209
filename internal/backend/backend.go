// Package backend defines the persistence contract the board engine syncs
// against, and a REST client implementing it.
package backend

import (
	"context"
	"errors"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Backend is the set of remote operations the engine depends on. Every call
// carries absolute values (full records, destination column and order) so
// that out-of-order arrival degrades to last-write-wins.
type Backend interface {
	// GetBoard returns the full snapshot of a board
	GetBoard(ctx context.Context, boardID types.BoardID) (models.Snapshot, error)

	// CreateColumn stores a column and returns it with its assigned ID. A
	// backend may keep the ID supplied by the caller.
	CreateColumn(ctx context.Context, column models.Column) (models.Column, error)
	UpdateColumn(ctx context.Context, column models.Column) error
	// DeleteColumn removes the column and its cards
	DeleteColumn(ctx context.Context, id types.ColumnID) error

	// CreateCard stores a card and returns it with its assigned ID
	CreateCard(ctx context.Context, card models.Card) (models.Card, error)
	UpdateCard(ctx context.Context, card models.Card) error
	DeleteCard(ctx context.Context, id types.CardID) error

	// MoveCard places the card at an absolute destination
	MoveCard(ctx context.Context, id types.CardID, columnID types.ColumnID, order int) error
}

// Directory lists and creates boards
type Directory interface {
	ListBoards(ctx context.Context) ([]models.Board, error)
	CreateBoard(ctx context.Context, board models.Board) (models.Board, error)
}

// Store is a backend that also manages the board directory
type Store interface {
	Backend
	Directory
}

// ErrNotFound is returned (or matched) when a board, column or card does not exist
var ErrNotFound = errors.New("not found")
