package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a card to another position",
		Long: `Move a card the way a drag and drop would: onto a column (append at the
bottom) or onto another card (take that card's position). Both columns are
renumbered.

Examples:
  # Move to the bottom of a column
  kanban card move --board=abc123 --card=9f1c --to="In Progress"

  # Move in front of another card
  kanban card move --board=abc123 --card=9f1c --before=77ab
`,
		Args: cobra.NoArgs,
		RunE: runMove,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("card", "", "Card ID or ID prefix (required)")
	cmd.Flags().String("to", "", "Destination column ID or name")
	cmd.Flags().String("before", "", "Card to insert before")
	cmd.MarkFlagsMutuallyExclusive("to", "before")
	cmd.MarkFlagsOneRequired("to", "before")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	ref, err := cli.RequireString(cmd, "card")
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.OpenBoard(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() { _ = cliInstance.Close(ctx) }()

	eng := cliInstance.Engine()
	card, err := cli.ResolveCard(eng, ref)
	if err != nil {
		return formatter.Fail(err)
	}

	var target string
	if to, _ := cmd.Flags().GetString("to"); to != "" {
		column, err := cli.ResolveColumn(eng, to)
		if err != nil {
			return formatter.Fail(err)
		}
		target = column.ID.String()
	} else {
		before, _ := cmd.Flags().GetString("before")
		other, err := cli.ResolveCard(eng, before)
		if err != nil {
			return formatter.Fail(err)
		}
		target = other.ID.String()
	}

	if err := eng.DragStart(card.ID); err != nil {
		return formatter.Fail(err)
	}
	moved, err := eng.DragEnd(target)
	if err != nil {
		return formatter.Fail(err)
	}
	notes, err := cliInstance.Finish(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	after, _ := eng.Card(card.ID)
	column, _ := eng.Column(after.ColumnID)
	exceeded := eng.WipExceeded(column.ID)

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{
			"moved": moved,
			"card":  cardJSON{Card: after, ColumnName: column.Name, WipExceeded: exceeded},
		}, notes)
	}

	if !moved {
		formatter.Printf("Card '%s' is already there\n", card.Title)
		return nil
	}
	formatter.Printf("✓ Card '%s' moved to %s, position %d\n", after.Title, column.Name, after.Order+1)
	if exceeded {
		formatter.Printf("⚠ Column '%s' is over its WIP limit of %d\n", column.Name, *column.WipLimit)
	}
	formatter.Notes(notes)
	return nil
}
