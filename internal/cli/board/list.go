package board

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Long: `List all boards of the configured store.

Examples:
  # Human-readable list
  kanban board list

  # JSON output for agents
  kanban board list --json

  # Quiet mode (one ID per line)
  kanban board list --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() { _ = cliInstance.Close(ctx) }()

	dir, err := cliInstance.App.Directory()
	if err != nil {
		return formatter.Fail(err)
	}
	boards, err := dir.ListBoards(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	if boards == nil {
		boards = []models.Board{}
	}

	if formatter.Quiet {
		for _, b := range boards {
			formatter.ID(b.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.Success(boards, nil)
	}

	if len(boards) == 0 {
		formatter.Printf("No boards found\n")
		return nil
	}
	formatter.Printf("Boards:\n")
	for _, b := range boards {
		formatter.Printf("  %s  %s\n", b.ID, b.Name)
	}
	return nil
}
