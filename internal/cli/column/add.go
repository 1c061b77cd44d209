package column

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/engine"
)

// AddCmd returns the column add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a column at the end of a board",
		Long: `Add a column after the board's last column.

Examples:
  # Add a column (human-readable output)
  kanban column add --board=abc123 --name="Review"

  # With a WIP limit
  kanban column add --board=abc123 --name="Review" --wip=3

  # Quiet mode for bash capture
  COLUMN_ID=$(kanban column add --board=abc123 --name="Review" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("name", "", "Column name (required)")
	cmd.Flags().String("color", "", "Column color")
	cmd.Flags().Int("wip", 0, "WIP limit (omit for none)")
	cmd.Flags().Bool("done", false, "Cards in this column count as done")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	in := engine.ColumnInput{}
	in.Name, _ = cmd.Flags().GetString("name")
	in.Color, _ = cmd.Flags().GetString("color")
	in.IsDone, _ = cmd.Flags().GetBool("done")
	if cmd.Flags().Changed("wip") {
		wip, _ := cmd.Flags().GetInt("wip")
		in.WipLimit = &wip
	}

	cliInstance, err := cli.OpenBoard(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() { _ = cliInstance.Close(ctx) }()

	column, err := cliInstance.Engine().AddColumn(in)
	if err != nil {
		return formatter.Fail(err)
	}
	notes, err := cliInstance.Finish(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		formatter.ID(column.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(columnJSON{Column: column}, notes)
	}

	formatter.Printf("✓ Column '%s' added successfully (ID: %s)\n", column.Name, column.ID)
	formatter.Printf("  Board: %s\n", cliInstance.Engine().Board().Name)
	formatter.Notes(notes)
	return nil
}
