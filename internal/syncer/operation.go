package syncer

import (
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// OpKind names a backend mutation
type OpKind string

const (
	OpCreateColumn OpKind = "create_column"
	OpUpdateColumn OpKind = "update_column"
	OpDeleteColumn OpKind = "delete_column"
	OpCreateCard   OpKind = "create_card"
	OpUpdateCard   OpKind = "update_card"
	OpDeleteCard   OpKind = "delete_card"
	OpMoveCard     OpKind = "move_card"
)

var descriptions = map[OpKind]string{
	OpCreateColumn: "Column created",
	OpUpdateColumn: "Column updated",
	OpDeleteColumn: "Column deleted",
	OpCreateCard:   "Card created",
	OpUpdateCard:   "Card updated",
	OpDeleteCard:   "Card deleted",
	OpMoveCard:     "Card moved",
}

// Describe returns the user-facing summary of a completed operation
func (k OpKind) Describe() string {
	if d, ok := descriptions[k]; ok {
		return d
	}
	return string(k)
}

// Operation is one committed local mutation to mirror on the backend. Only
// the fields relevant to Kind are set.
type Operation struct {
	Kind     OpKind
	BoardID  types.BoardID
	Column   models.Column
	Card     models.Card
	ColumnID types.ColumnID
	CardID   types.CardID
	Order    int
}

// EntityID returns the id of the column or card the operation targets
func (op Operation) EntityID() string {
	switch op.Kind {
	case OpCreateColumn, OpUpdateColumn:
		return op.Column.ID.String()
	case OpDeleteColumn:
		return op.ColumnID.String()
	case OpCreateCard, OpUpdateCard:
		return op.Card.ID.String()
	default:
		return op.CardID.String()
	}
}

func CreateColumn(column models.Column) Operation {
	return Operation{Kind: OpCreateColumn, BoardID: column.BoardID, Column: column.Clone()}
}

func UpdateColumn(column models.Column) Operation {
	return Operation{Kind: OpUpdateColumn, BoardID: column.BoardID, Column: column.Clone()}
}

func DeleteColumn(boardID types.BoardID, id types.ColumnID) Operation {
	return Operation{Kind: OpDeleteColumn, BoardID: boardID, ColumnID: id}
}

func CreateCard(boardID types.BoardID, card models.Card) Operation {
	return Operation{Kind: OpCreateCard, BoardID: boardID, Card: card.Clone()}
}

func UpdateCard(boardID types.BoardID, card models.Card) Operation {
	return Operation{Kind: OpUpdateCard, BoardID: boardID, Card: card.Clone()}
}

func DeleteCard(boardID types.BoardID, id types.CardID) Operation {
	return Operation{Kind: OpDeleteCard, BoardID: boardID, CardID: id}
}

// MoveCard carries the absolute destination of a card
func MoveCard(boardID types.BoardID, id types.CardID, columnID types.ColumnID, order int) Operation {
	return Operation{Kind: OpMoveCard, BoardID: boardID, CardID: id, ColumnID: columnID, Order: order}
}
