// Package use holds the cli commands that set shell context, e.g.
// kanban use board ...
package use

import (
	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Manage contextual settings",
		Long: `Set context for the current shell session so that subsequent commands
need fewer flags.

Examples:
  eval $(kanban use board abc123)   # Use board abc123
  eval $(kanban use board --clear)  # Clear board context
  kanban use board --show           # Show current board`,
	}

	cmd.AddCommand(BoardCmd())

	return cmd
}
