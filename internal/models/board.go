package models

import "github.com/thenoetrevino/kanban/internal/types"

// Board is a named collection of ordered columns and cards for one project
type Board struct {
	ID          types.BoardID `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
}

// Snapshot is the full state of one board as returned by a backend
type Snapshot struct {
	Board   Board    `json:"board"`
	Columns []Column `json:"columns"`
	Cards   []Card   `json:"cards"`
}

// Clone returns a deep copy of the snapshot
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Board: s.Board}
	if s.Columns != nil {
		out.Columns = make([]Column, len(s.Columns))
		for i, c := range s.Columns {
			out.Columns[i] = c.Clone()
		}
	}
	if s.Cards != nil {
		out.Cards = make([]Card, len(s.Cards))
		for i, c := range s.Cards {
			out.Cards[i] = c.Clone()
		}
	}
	return out
}
