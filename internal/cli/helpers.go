package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/engine"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
	"github.com/thenoetrevino/kanban/internal/user"
)

// BoardEnv is the environment variable consulted when --board is not given
const BoardEnv = "KANBAN_BOARD"

// AddOutputFlags adds the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// AddBoardFlag adds the --board flag
func AddBoardFlag(cmd *cobra.Command) {
	cmd.Flags().String("board", "", "Board ID (defaults to $"+BoardEnv+")")
}

// GetBoardID returns the board from the --board flag or the environment.
// The flag takes precedence.
func GetBoardID(cmd *cobra.Command) (types.BoardID, error) {
	id, _ := cmd.Flags().GetString("board")
	if id == "" {
		id = os.Getenv(BoardEnv)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", &UsageError{Message: "no board selected: pass --board or set " + BoardEnv}
	}
	return types.BoardID(id), nil
}

// RequireString returns a string flag, or a UsageError when it is empty
func RequireString(cmd *cobra.Command, name string) (string, error) {
	v, _ := cmd.Flags().GetString(name)
	if strings.TrimSpace(v) == "" {
		return "", &UsageError{Message: fmt.Sprintf("--%s is required", name)}
	}
	return v, nil
}

// ResolveColumn finds a column by ID, unique ID prefix or case-insensitive name
func ResolveColumn(e *engine.Engine, ref string) (models.Column, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Column{}, &UsageError{Message: "column reference cannot be empty"}
	}
	if col, ok := e.Column(types.ColumnID(ref)); ok {
		return col, nil
	}

	var matches []models.Column
	for _, col := range e.Columns() {
		if strings.HasPrefix(col.ID.String(), ref) || strings.EqualFold(col.Name, ref) {
			matches = append(matches, col)
		}
	}
	switch len(matches) {
	case 0:
		return models.Column{}, fmt.Errorf("%w: %s", engine.ErrColumnNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return models.Column{}, &UsageError{Message: fmt.Sprintf("column %q is ambiguous, use its ID", ref)}
	}
}

// ResolveCard finds a card by ID or unique ID prefix
func ResolveCard(e *engine.Engine, ref string) (models.Card, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Card{}, &UsageError{Message: "card reference cannot be empty"}
	}
	if card, ok := e.Card(types.CardID(ref)); ok {
		return card, nil
	}

	var matches []models.Card
	for _, col := range e.Columns() {
		for _, card := range e.CardsByColumn(col.ID) {
			if strings.HasPrefix(card.ID.String(), ref) {
				matches = append(matches, card)
			}
		}
	}
	switch len(matches) {
	case 0:
		return models.Card{}, fmt.Errorf("%w: %s", engine.ErrCardNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return models.Card{}, &UsageError{Message: fmt.Sprintf("card prefix %q is ambiguous", ref)}
	}
}

// ParseTags parses "name" or "name:color" values
func ParseTags(values []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(values))
	for _, v := range values {
		name, color, _ := strings.Cut(v, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: tag %q has no name", ErrInvalidInput, v)
		}
		tags = append(tags, models.Tag{Name: name, Color: strings.TrimSpace(color)})
	}
	return tags, nil
}

// ParseAssignees turns names into assignees; mine adds the current user
func ParseAssignees(names []string, mine bool) []models.Assignee {
	out := make([]models.Assignee, 0, len(names)+1)
	seen := make(map[string]bool, len(names)+1)
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, models.Assignee{Name: name})
	}
	for _, n := range names {
		add(n)
	}
	if mine {
		add(user.GetCurrentUsername())
	}
	return out
}

// ParseDueDate accepts YYYY-MM-DD or RFC 3339. Empty means no due date.
func ParseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: due date %q must be YYYY-MM-DD or RFC 3339", ErrInvalidInput, s)
}

// Confirm asks a yes/no question on the command's streams. Anything but
// y or yes declines.
func Confirm(cmd *cobra.Command, prompt string) bool {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", prompt)
	response, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
