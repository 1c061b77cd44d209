package card

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// DeleteCmd returns the card delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a card",
		Long: `Delete a card (requires confirmation unless --force or --quiet). The
remaining cards of its column close the gap.

Examples:
  kanban card delete --board=abc123 --card=9f1c
  kanban card delete --board=abc123 --card=9f1c --force
`,
		Args: cobra.NoArgs,
		RunE: runDelete,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("card", "", "Card ID or ID prefix (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	force, _ := cmd.Flags().GetBool("force")
	if !force && formatter.JSON {
		return formatter.Fail(&cli.UsageError{Message: "--force is required with --json"})
	}
	if !force && !formatter.Quiet {
		if !cli.Confirm(cmd, fmt.Sprintf("Delete card '%s'?", card.Title)) {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	if err := eng.DeleteCard(card.ID); err != nil {
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
		return formatter.Success(map[string]any{"cardId": card.ID}, notes)
	}

	formatter.Printf("✓ Card '%s' deleted successfully\n", card.Title)
	formatter.Notes(notes)
	return nil
}
