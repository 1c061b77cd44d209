package board

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a board with its columns and cards",
		Long: `Show a board with its columns and cards. Columns over their WIP limit
are highlighted.

Examples:
  kanban board show --board=abc123
  kanban board show --board=abc123 --plain
  kanban board show --board=abc123 --json
`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().Bool("plain", false, "Render without colors or borders")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	boardID, err := cli.GetBoardID(cmd)
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() { _ = cliInstance.Close(ctx) }()

	if err := cliInstance.LoadBoard(ctx, boardID); err != nil {
		return formatter.Fail(err)
	}
	snap := cliInstance.Engine().Snapshot()

	if formatter.Quiet {
		for _, card := range snap.Cards {
			formatter.ID(card.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.Success(snap, nil)
	}

	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		formatter.Printf("%s", cli.RenderBoardPlain(snap))
		return nil
	}
	formatter.Printf("%s", cli.RenderBoard(snap, cliInstance.App.Config.ColorScheme))
	return nil
}
