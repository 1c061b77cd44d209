package models

import (
	"time"

	"github.com/thenoetrevino/kanban/internal/types"
)

// Priority is the urgency of a card
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// DefaultPriority is used when a card is created without one
const DefaultPriority = PriorityMedium

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ParsePriority maps a priority string to a Priority
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.Valid() {
		return "", &ValidationError{Field: "priority", Message: "must be one of low, medium, high, urgent"}
	}
	return p, nil
}

// Tag is a colored label attached to a card
type Tag struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Assignee is a person working on a card
type Assignee struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Card represents a single unit of work on the board.
// Order is the zero-based position of the card within its column.
type Card struct {
	ID              types.CardID   `json:"id"`
	ColumnID        types.ColumnID `json:"columnId"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Priority        Priority       `json:"priority"`
	Tags            []Tag          `json:"tags"`
	Assignees       []Assignee     `json:"assignees"`
	DueDate         *time.Time     `json:"dueDate"`
	AttachmentCount int            `json:"attachmentCount"`
	CommentCount    int            `json:"commentCount"`
	Order           int            `json:"order"`
}

// Clone returns a copy of the card that shares no slices or pointers with c
func (c Card) Clone() Card {
	if c.Tags != nil {
		c.Tags = append([]Tag(nil), c.Tags...)
	}
	if c.Assignees != nil {
		c.Assignees = append([]Assignee(nil), c.Assignees...)
	}
	if c.DueDate != nil {
		due := *c.DueDate
		c.DueDate = &due
	}
	return c
}
