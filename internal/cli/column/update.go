package column

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// UpdateCmd returns the column update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a column",
		Long: `Update a column's name, color, WIP limit or done flag. Only the flags
given are changed. The column is found by ID, ID prefix or name.

Examples:
  kanban column update --board=abc123 --column="Review" --name="QA"
  kanban column update --board=abc123 --column=3f2a --wip=2
  kanban column update --board=abc123 --column="QA" --no-wip
`,
		Args: cobra.NoArgs,
		RunE: runUpdate,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("column", "", "Column ID or name (required)")
	cmd.Flags().String("name", "", "New column name")
	cmd.Flags().String("color", "", "New column color")
	cmd.Flags().Int("wip", 0, "New WIP limit")
	cmd.Flags().Bool("no-wip", false, "Remove the WIP limit")
	cmd.Flags().Bool("done", false, "Whether cards in this column count as done")
	cmd.MarkFlagsMutuallyExclusive("wip", "no-wip")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
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
	oldName := column.Name

	flags := cmd.Flags()
	if flags.Changed("name") {
		column.Name, _ = flags.GetString("name")
	}
	if flags.Changed("color") {
		column.Color, _ = flags.GetString("color")
	}
	if flags.Changed("wip") {
		wip, _ := flags.GetInt("wip")
		column.WipLimit = &wip
	}
	if noWip, _ := flags.GetBool("no-wip"); noWip {
		column.WipLimit = nil
	}
	if flags.Changed("done") {
		column.IsDone, _ = flags.GetBool("done")
	}

	updated, err := eng.UpdateColumn(column)
	if err != nil {
		return formatter.Fail(err)
	}
	notes, err := cliInstance.Finish(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	count := len(eng.CardsByColumn(updated.ID))
	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(columnJSON{
			Column:      updated,
			CardCount:   count,
			WipExceeded: eng.WipExceeded(updated.ID),
		}, notes)
	}

	formatter.Printf("✓ Column %s updated successfully\n", updated.ID)
	if oldName != updated.Name {
		formatter.Printf("  '%s' → '%s'\n", oldName, updated.Name)
	}
	if eng.WipExceeded(updated.ID) {
		formatter.Printf("⚠ %d cards exceed the WIP limit of %d\n", count, *updated.WipLimit)
	}
	formatter.Notes(notes)
	return nil
}
