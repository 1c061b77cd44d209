// Package setup holds the commands that prepare a kanban installation
package setup

import (
	"github.com/spf13/cobra"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Prepare the kanban configuration",
	}

	cmd.AddCommand(ConfigCmd())

	return cmd
}
