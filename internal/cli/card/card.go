// Package card holds the kanban card subcommands
package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// addContentFlags adds the flags shared by add and update
func addContentFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Card title")
	cmd.Flags().String("description", "", "Card description")
	cmd.Flags().String("priority", "", "Priority (low, medium, high, urgent)")
	cmd.Flags().StringSlice("tag", nil, "Tag as name or name:color (repeatable)")
	cmd.Flags().StringSlice("assignee", nil, "Assignee name (repeatable)")
	cmd.Flags().Bool("mine", false, "Assign the card to the current user")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD or RFC 3339)")
}

// parsePriority reads --priority; empty means the default
func parsePriority(cmd *cobra.Command) (models.Priority, error) {
	s, _ := cmd.Flags().GetString("priority")
	if s == "" {
		return "", nil
	}
	return models.ParsePriority(s)
}

// parseAssignees reads --assignee and --mine
func parseAssignees(cmd *cobra.Command) []models.Assignee {
	names, _ := cmd.Flags().GetStringSlice("assignee")
	mine, _ := cmd.Flags().GetBool("mine")
	return cli.ParseAssignees(names, mine)
}

// cardJSON is the JSON shape of a card in command output
type cardJSON struct {
	models.Card
	ColumnName  string `json:"columnName"`
	WipExceeded bool   `json:"wipExceeded"`
}
