package cli

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/config/colors"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ColumnWidth is the width of a rendered column, borders included
const ColumnWidth = 40

// boardView indexes a snapshot for rendering
func boardView(snap models.Snapshot) *board.State {
	s := board.NewState()
	s.SetBoard(snap.Board)
	s.ApplyColumnSet(snap.Columns)
	s.ApplyCardSet(snap.Cards)
	return s
}

// RenderBoardPlain renders a board as uncolored text, one column after the
// other. The output is stable and suited to pipes and logs.
func RenderBoardPlain(snap models.Snapshot) string {
	s := boardView(snap)
	var b strings.Builder

	fmt.Fprintf(&b, "%s [%s]\n", snap.Board.Name, snap.Board.ID)
	if snap.Board.Description != "" {
		fmt.Fprintf(&b, "%s\n", snap.Board.Description)
	}

	for _, col := range s.Columns() {
		cards := s.CardsByColumn(col.ID)
		b.WriteString("\n")
		b.WriteString(columnHeader(col, len(cards)))
		b.WriteString("\n")
		if len(cards) == 0 {
			b.WriteString("  (empty)\n")
			continue
		}
		for _, card := range cards {
			fmt.Fprintf(&b, "  %d. %s  (%s)\n", card.Order+1, cardLine(card), card.ID)
		}
	}
	return b.String()
}

// RenderBoard renders a board with lipgloss, columns side by side
func RenderBoard(snap models.Snapshot, scheme colors.ColorScheme) string {
	s := boardView(snap)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))
	subtleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))
	warnStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.WipWarning))
	textStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	rendered := make([]string, 0, len(snap.Columns))
	for _, col := range s.Columns() {
		cards := s.CardsByColumn(col.ID)

		header := headerStyle.Render(columnHeader(col, len(cards)))
		if board.Exceeded(col, len(cards)) {
			header = warnStyle.Render(columnHeader(col, len(cards)))
		}

		lines := []string{header}
		if len(cards) == 0 {
			lines = append(lines, subtleStyle.Render("(empty)"))
		}
		for _, card := range cards {
			badge := lipgloss.NewStyle().
				Foreground(lipgloss.Color(priorityColor(scheme, card.Priority))).
				Render("●")
			lines = append(lines, badge+" "+textStyle.Render(cardLine(card)))
		}

		border := scheme.ColumnBorder
		if col.IsDone {
			border = scheme.DoneBorder
		}
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 1).
			Width(ColumnWidth)
		rendered = append(rendered, box.Render(strings.Join(lines, "\n")))
	}

	title := titleStyle.Render(snap.Board.Name) + " " + subtleStyle.Render("["+snap.Board.ID.String()+"]")
	if snap.Board.Description != "" {
		title += "\n" + subtleStyle.Render(snap.Board.Description)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, rendered...)) + "\n"
}

func columnHeader(col models.Column, count int) string {
	var b strings.Builder
	b.WriteString(col.Name)
	if col.WipLimit != nil {
		fmt.Fprintf(&b, " (%d/%d)", count, *col.WipLimit)
	} else {
		fmt.Fprintf(&b, " (%d)", count)
	}
	if board.Exceeded(col, count) {
		b.WriteString(" WIP EXCEEDED")
	}
	if col.IsDone {
		b.WriteString(" [done]")
	}
	return b.String()
}

func cardLine(card models.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]", card.Title, card.Priority)
	for _, tag := range card.Tags {
		b.WriteString(" #" + tag.Name)
	}
	for _, a := range card.Assignees {
		b.WriteString(" @" + a.Name)
	}
	if card.DueDate != nil {
		b.WriteString(" due:" + card.DueDate.Format("2006-01-02"))
	}
	return b.String()
}

func priorityColor(scheme colors.ColorScheme, p models.Priority) string {
	switch p {
	case models.PriorityLow:
		return scheme.PriorityLow
	case models.PriorityHigh:
		return scheme.PriorityHigh
	case models.PriorityUrgent:
		return scheme.PriorityUrgent
	default:
		return scheme.PriorityMedium
	}
}
