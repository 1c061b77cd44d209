package board

import (
	"sort"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Reader is the read-only view of a board used by the placement resolver
type Reader interface {
	Column(id types.ColumnID) (models.Column, bool)
	Card(id types.CardID) (models.Card, bool)
	CardsByColumn(id types.ColumnID) []models.Card
}

// State is the canonical in-memory model of the columns and cards of one board.
// It applies no business rules; callers are responsible for keeping orders
// normalized. State is not safe for concurrent use.
type State struct {
	board   models.Board
	columns map[types.ColumnID]models.Column
	cards   map[types.CardID]models.Card
}

// NewState creates an empty board state
func NewState() *State {
	return &State{
		columns: make(map[types.ColumnID]models.Column),
		cards:   make(map[types.CardID]models.Card),
	}
}

// Board returns the board metadata
func (s *State) Board() models.Board {
	return s.board
}

// SetBoard replaces the board metadata
func (s *State) SetBoard(b models.Board) {
	s.board = b
}

// Columns returns copies of all columns sorted by order
func (s *State) Columns() []models.Column {
	out := make([]models.Column, 0, len(s.columns))
	for _, c := range s.columns {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Column returns a copy of the column with the given ID
func (s *State) Column(id types.ColumnID) (models.Column, bool) {
	c, ok := s.columns[id]
	if !ok {
		return models.Column{}, false
	}
	return c.Clone(), true
}

// Card returns a copy of the card with the given ID
func (s *State) Card(id types.CardID) (models.Card, bool) {
	c, ok := s.cards[id]
	if !ok {
		return models.Card{}, false
	}
	return c.Clone(), true
}

// CardsByColumn returns copies of the cards of a column sorted by order
func (s *State) CardsByColumn(id types.ColumnID) []models.Card {
	out := []models.Card{}
	for _, c := range s.cards {
		if c.ColumnID == id {
			out = append(out, c.Clone())
		}
	}
	sortCards(out)
	return out
}

// CardCount returns the number of cards in a column
func (s *State) CardCount(id types.ColumnID) int {
	n := 0
	for _, c := range s.cards {
		if c.ColumnID == id {
			n++
		}
	}
	return n
}

// Cards returns copies of every card, grouped by column order then card order
func (s *State) Cards() []models.Card {
	out := []models.Card{}
	for _, col := range s.Columns() {
		out = append(out, s.CardsByColumn(col.ID)...)
	}
	return out
}

// ApplyColumnSet replaces every column. Applying the same set twice is a no-op.
func (s *State) ApplyColumnSet(columns []models.Column) {
	s.columns = make(map[types.ColumnID]models.Column, len(columns))
	for _, c := range columns {
		s.columns[c.ID] = c.Clone()
	}
}

// ApplyCardSet replaces every card. Applying the same set twice is a no-op.
func (s *State) ApplyCardSet(cards []models.Card) {
	s.cards = make(map[types.CardID]models.Card, len(cards))
	for _, c := range cards {
		s.cards[c.ID] = c.Clone()
	}
}

// PutColumn inserts or replaces a single column
func (s *State) PutColumn(c models.Column) {
	s.columns[c.ID] = c.Clone()
}

// PutCards inserts or replaces the given cards
func (s *State) PutCards(cards ...models.Card) {
	for _, c := range cards {
		s.cards[c.ID] = c.Clone()
	}
}

// RemoveColumn deletes a column and returns the IDs of the cards it held,
// which are deleted with it
func (s *State) RemoveColumn(id types.ColumnID) []types.CardID {
	delete(s.columns, id)
	var removed []types.CardID
	for cardID, c := range s.cards {
		if c.ColumnID == id {
			removed = append(removed, cardID)
			delete(s.cards, cardID)
		}
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })
	return removed
}

// RemoveCard deletes a single card
func (s *State) RemoveCard(id types.CardID) {
	delete(s.cards, id)
}

// RenameColumn moves a column and all of its cards to a new ID
func (s *State) RenameColumn(from, to types.ColumnID) bool {
	c, ok := s.columns[from]
	if !ok || from == to {
		return false
	}
	delete(s.columns, from)
	c.ID = to
	s.columns[to] = c
	for id, card := range s.cards {
		if card.ColumnID == from {
			card.ColumnID = to
			s.cards[id] = card
		}
	}
	return true
}

// RenameCard moves a card to a new ID
func (s *State) RenameCard(from, to types.CardID) bool {
	c, ok := s.cards[from]
	if !ok || from == to {
		return false
	}
	delete(s.cards, from)
	c.ID = to
	s.cards[to] = c
	return true
}

// Snapshot returns a deep copy of the whole board
func (s *State) Snapshot() models.Snapshot {
	return models.Snapshot{
		Board:   s.board,
		Columns: s.Columns(),
		Cards:   s.Cards(),
	}
}

func sortCards(cards []models.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		if cards[i].Order != cards[j].Order {
			return cards[i].Order < cards[j].Order
		}
		return cards[i].ID < cards[j].ID
	})
}
