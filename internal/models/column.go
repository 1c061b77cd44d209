package models

import "github.com/thenoetrevino/kanban/internal/types"

// Column represents a kanban board column (e.g., "To Do", "In Progress", "Done").
// Order is the zero-based position of the column among its board's columns.
type Column struct {
	ID       types.ColumnID `json:"id"`
	BoardID  types.BoardID  `json:"boardId"`
	Name     string         `json:"name"`
	Color    string         `json:"color"`
	Order    int            `json:"order"`
	WipLimit *int           `json:"wipLimit"` // nil means no limit
	IsDone   bool           `json:"isDone"`
}

// Clone returns a copy of the column that shares no pointers with c
func (c Column) Clone() Column {
	if c.WipLimit != nil {
		limit := *c.WipLimit
		c.WipLimit = &limit
	}
	return c
}

// DefaultColumns are the columns seeded into a new board
var DefaultColumns = []struct {
	Name   string
	Color  string
	IsDone bool
}{
	{"To Do", "#6B7280", false},
	{"In Progress", "#3B82F6", false},
	{"Done", "#10B981", true},
}
