package column

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a column and its cards",
		Long: `Delete a column (requires confirmation unless --force or --quiet).

Warning: Deleting a column deletes every card in it.

Examples:
  # Delete with confirmation
  kanban column delete --board=abc123 --column="Review"

  # Skip confirmation
  kanban column delete --board=abc123 --column="Review" --force
`,
		Args: cobra.NoArgs,
		RunE: runDelete,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("column", "", "Column ID or name (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	ref, err := cli.RequireString(cmd, "column")
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.OpenBoard(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() { _ = cliInstance.Close(ctx) }()

	eng := cliInstance.Engine()
	column, err := cli.ResolveColumn(eng, ref)
	if err != nil {
		return formatter.Fail(err)
	}
	cardCount := len(eng.CardsByColumn(column.ID))

	// Ask for confirmation unless force or quiet mode
	force, _ := cmd.Flags().GetBool("force")
	if !force && formatter.JSON {
		return formatter.Fail(&cli.UsageError{Message: "--force is required with --json"})
	}
	if !force && !formatter.Quiet {
		prompt := fmt.Sprintf("Delete column '%s' and its %d cards?", column.Name, cardCount)
		if !cli.Confirm(cmd, prompt) {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	if err := eng.DeleteColumn(column.ID); err != nil {
		return formatter.Fail(err)
	}
	notes, err := cliInstance.Finish(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{
			"columnId":     column.ID,
			"deletedCards": cardCount,
		}, notes)
	}

	formatter.Printf("✓ Column '%s' deleted successfully (%d cards removed)\n", column.Name, cardCount)
	formatter.Notes(notes)
	return nil
}
