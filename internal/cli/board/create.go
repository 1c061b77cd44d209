package board

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a new board with the default To Do, In Progress and Done columns.

Examples:
  # Create a board (human-readable output)
  kanban board create --name="Launch"

  # Quiet mode for bash capture
  BOARD_ID=$(kanban board create --name="Launch" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Board name (required)")
	cmd.Flags().String("description", "", "Board description")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")

	// Validate before touching the store
	if err := models.RequireNonEmpty("name", name); err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() { _ = cliInstance.Close(ctx) }()

	dir, err := cliInstance.App.Directory()
	if err != nil {
		return formatter.Fail(err)
	}
	created, err := dir.CreateBoard(ctx, models.Board{Name: name, Description: description})
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		formatter.ID(created.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(created, nil)
	}

	formatter.Printf("✓ Board '%s' created successfully (ID: %s)\n", created.Name, created.ID)
	return nil
}
