package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// UpdateCmd returns the card update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a card's content",
		Long: `Update a card's title, description, priority, tags, assignees or due
date. Only the flags given are changed; --tag and --assignee replace the
existing lists. Updating never moves a card.

Examples:
  kanban card update --board=abc123 --card=9f1c --title="Fix login flow"
  kanban card update --board=abc123 --card=9f1c --priority=urgent --mine
  kanban card update --board=abc123 --card=9f1c --clear-due
`,
		Args: cobra.NoArgs,
		RunE: runUpdate,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("card", "", "Card ID or ID prefix (required)")
	addContentFlags(cmd)
	cmd.Flags().Bool("clear-due", false, "Remove the due date")
	cmd.MarkFlagsMutuallyExclusive("due", "clear-due")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
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

	flags := cmd.Flags()
	if flags.Changed("title") {
		card.Title, _ = flags.GetString("title")
	}
	if flags.Changed("description") {
		card.Description, _ = flags.GetString("description")
	}
	if flags.Changed("priority") {
		if card.Priority, err = parsePriority(cmd); err != nil {
			return formatter.Fail(err)
		}
	}
	if flags.Changed("tag") {
		values, _ := flags.GetStringSlice("tag")
		if card.Tags, err = cli.ParseTags(values); err != nil {
			return formatter.Fail(err)
		}
	}
	if flags.Changed("assignee") || flags.Changed("mine") {
		card.Assignees = parseAssignees(cmd)
	}
	if flags.Changed("due") {
		due, _ := flags.GetString("due")
		if card.DueDate, err = cli.ParseDueDate(due); err != nil {
			return formatter.Fail(err)
		}
	}
	if clearDue, _ := flags.GetBool("clear-due"); clearDue {
		card.DueDate = nil
	}

	updated, err := eng.UpdateCard(card)
	if err != nil {
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
		column, _ := eng.Column(updated.ColumnID)
		return formatter.Success(cardJSON{Card: updated, ColumnName: column.Name}, notes)
	}

	formatter.Printf("✓ Card %s updated successfully\n", updated.ID)
	formatter.Printf("  %s [%s]\n", updated.Title, updated.Priority)
	formatter.Notes(notes)
	return nil
}
