package board

import "github.com/thenoetrevino/kanban/internal/models"

// Exceeded reports whether a column holding cardCount cards is over its WIP
// limit. Columns without a limit are never exceeded. The result is advisory.
func Exceeded(column models.Column, cardCount int) bool {
	return column.WipLimit != nil && cardCount > *column.WipLimit
}
