package board

import (
	"sort"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Normalize returns the cards of columnID in the relative sequence they appear
// in cards, with Order rewritten to 0..n-1. Cards of other columns are left
// out. The input slice is not modified.
func Normalize(cards []models.Card, columnID types.ColumnID) []models.Card {
	out := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		if c.ColumnID != columnID {
			continue
		}
		c = c.Clone()
		c.Order = len(out)
		out = append(out, c)
	}
	return out
}

// IsNormalized reports whether the orders of the given column's cards are
// exactly 0..n-1 with no gaps or duplicates
func IsNormalized(cards []models.Card, columnID types.ColumnID) bool {
	var orders []int
	for _, c := range cards {
		if c.ColumnID == columnID {
			orders = append(orders, c.Order)
		}
	}
	sort.Ints(orders)
	for i, o := range orders {
		if o != i {
			return false
		}
	}
	return true
}

// NextColumnOrder returns the order a newly appended column takes. With
// contiguous orders this is the column count; after a deletion left a gap it
// is one past the highest order so orders stay unique.
func NextColumnOrder(columns []models.Column) int {
	next := 0
	for _, c := range columns {
		if c.Order >= next {
			next = c.Order + 1
		}
	}
	return next
}
