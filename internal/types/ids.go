package types

// ID type aliases provide semantic meaning for the opaque string identifiers
// carried by boards, columns and cards. IDs are either assigned by a backend
// or provisionally generated on the client before the backend answers.

// BoardID identifies a board (one project view)
type BoardID string

// ColumnID identifies a column within a board
type ColumnID string

// CardID identifies a card within a board
type CardID string

func (id BoardID) String() string {
	return string(id)
}

func (id ColumnID) String() string {
	return string(id)
}

func (id CardID) String() string {
	return string(id)
}

// IsZero reports whether the ID is unset
func (id BoardID) IsZero() bool { return id == "" }

func (id ColumnID) IsZero() bool { return id == "" }

func (id CardID) IsZero() bool { return id == "" }
