package board

import (
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Placement is where a dragged card lands
type Placement struct {
	ColumnID types.ColumnID
	Index    int
}

// Resolve computes the destination of draggedID when dropped on dropTargetID.
//
// A column target appends to that column. A card target inserts before that
// card at its current index. Column IDs are matched before card IDs.
//
// Resolve returns nil when nothing should change: the target is empty or
// unknown, the dragged card is unknown, or the card would land where it is.
func Resolve(r Reader, draggedID types.CardID, dropTargetID string) *Placement {
	if dropTargetID == "" {
		return nil
	}
	dragged, ok := r.Card(draggedID)
	if !ok {
		return nil
	}

	var p *Placement
	if col, ok := r.Column(types.ColumnID(dropTargetID)); ok {
		p = &Placement{ColumnID: col.ID, Index: len(r.CardsByColumn(col.ID))}
	} else if target, ok := r.Card(types.CardID(dropTargetID)); ok {
		p = &Placement{ColumnID: target.ColumnID, Index: indexOf(r.CardsByColumn(target.ColumnID), target.ID)}
	} else {
		return nil
	}

	if p.ColumnID != dragged.ColumnID {
		return p
	}

	siblings := r.CardsByColumn(dragged.ColumnID)
	if p.Index > len(siblings)-1 {
		p.Index = len(siblings) - 1
	}
	if p.Index == indexOf(siblings, dragged.ID) {
		return nil
	}
	return p
}

// Splice removes the card from its current column and inserts it into the
// destination at the placement index, returning the renumbered cards of every
// affected column. The source column is included first when it differs from
// the destination.
func Splice(r Reader, cardID types.CardID, p Placement) []models.Card {
	card, ok := r.Card(cardID)
	if !ok {
		return nil
	}
	sourceID := card.ColumnID

	source := without(r.CardsByColumn(sourceID), cardID)
	dest := source
	if p.ColumnID != sourceID {
		dest = without(r.CardsByColumn(p.ColumnID), cardID)
	}

	idx := p.Index
	if idx < 0 {
		idx = 0
	}
	if idx > len(dest) {
		idx = len(dest)
	}

	card.ColumnID = p.ColumnID
	dest = append(dest[:idx], append([]models.Card{card}, dest[idx:]...)...)

	out := Normalize(dest, p.ColumnID)
	if p.ColumnID != sourceID {
		out = append(Normalize(source, sourceID), out...)
	}
	return out
}

func indexOf(cards []models.Card, id types.CardID) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func without(cards []models.Card, id types.CardID) []models.Card {
	out := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}
