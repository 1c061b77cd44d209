// Package column holds the kanban column subcommands
package column

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/models"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage columns",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// columnJSON is the JSON shape of a column in command output
type columnJSON struct {
	models.Column
	CardCount   int  `json:"cardCount"`
	WipExceeded bool `json:"wipExceeded"`
}
