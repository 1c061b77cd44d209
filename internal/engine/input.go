package engine

import (
	"time"

	"github.com/thenoetrevino/kanban/internal/models"
)

// ColumnInput holds the user-supplied fields of a new column
type ColumnInput struct {
	Name     string
	Color    string
	WipLimit *int
	IsDone   bool
}

// CardInput holds the user-supplied fields of a new card. An empty Priority
// means models.DefaultPriority.
type CardInput struct {
	Title       string
	Description string
	Priority    models.Priority
	Tags        []models.Tag
	Assignees   []models.Assignee
	DueDate     *time.Time
}

func validateColumn(name string, wipLimit *int) error {
	if err := models.RequireNonEmpty("name", name); err != nil {
		return err
	}
	if wipLimit != nil && *wipLimit < 0 {
		return &models.ValidationError{Field: "wipLimit", Message: "cannot be negative"}
	}
	return nil
}

// validateCard checks the title and returns the effective priority
func validateCard(title string, priority models.Priority) (models.Priority, error) {
	if err := models.RequireNonEmpty("title", title); err != nil {
		return "", err
	}
	if priority == "" {
		return models.DefaultPriority, nil
	}
	return models.ParsePriority(string(priority))
}
