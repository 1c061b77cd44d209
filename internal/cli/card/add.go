package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/engine"
)

// AddCmd returns the card add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a card to the end of a column",
		Long: `Add a card at the bottom of a column. The column is found by ID,
ID prefix or name.

Examples:
  # Add a card (human-readable output)
  kanban card add --board=abc123 --column="To Do" --title="Write docs"

  # With metadata, assigned to yourself
  kanban card add --board=abc123 --column="To Do" --title="Fix login" \
    --priority=high --tag=bug:#ff0000 --mine --due=2026-11-01

  # Quiet mode for bash capture
  CARD_ID=$(kanban card add --board=abc123 --column="To Do" --title="x" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("column", "", "Column ID or name (required)")
	addContentFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	ref, err := cli.RequireString(cmd, "column")
	if err != nil {
		return formatter.Fail(err)
	}

	// Parse all input before loading anything
	in := engine.CardInput{}
	in.Title, _ = cmd.Flags().GetString("title")
	in.Description, _ = cmd.Flags().GetString("description")
	if in.Priority, err = parsePriority(cmd); err != nil {
		return formatter.Fail(err)
	}
	tagValues, _ := cmd.Flags().GetStringSlice("tag")
	if in.Tags, err = cli.ParseTags(tagValues); err != nil {
		return formatter.Fail(err)
	}
	in.Assignees = parseAssignees(cmd)
	due, _ := cmd.Flags().GetString("due")
	if in.DueDate, err = cli.ParseDueDate(due); err != nil {
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

	card, err := eng.AddCard(column.ID, in)
	if err != nil {
		return formatter.Fail(err)
	}
	notes, err := cliInstance.Finish(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	exceeded := eng.WipExceeded(column.ID)

	if formatter.Quiet {
		formatter.ID(card.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(cardJSON{Card: card, ColumnName: column.Name, WipExceeded: exceeded}, notes)
	}

	formatter.Printf("✓ Card '%s' added successfully (ID: %s)\n", card.Title, card.ID)
	formatter.Printf("  Column: %s, position %d\n", column.Name, card.Order+1)
	if exceeded {
		formatter.Printf("⚠ Column '%s' is over its WIP limit of %d\n", column.Name, *column.WipLimit)
	}
	formatter.Notes(notes)
	return nil
}
