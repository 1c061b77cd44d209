package use

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/types"
)

// BoardCmd returns the use board subcommand
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board [board-id]",
		Short: "Set board context for current shell session",
		Long: `Set the current board using an environment variable.
This command outputs shell commands that should be evaluated:

  eval $(kanban use board abc123)     # Use board abc123
  eval $(kanban use board --clear)    # Clear board context
  kanban use board --show             # Show current board

The ` + cli.BoardEnv + ` environment variable will be set in your current shell
session only. The --board flag on other commands takes precedence over
this environment variable.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseBoard,
	}

	cmd.Flags().Bool("clear", false, "Clear the current board context")
	cmd.Flags().Bool("show", false, "Show the current board context")

	return cmd
}

func runUseBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if show, _ := cmd.Flags().GetBool("show"); show {
		current := os.Getenv(cli.BoardEnv)
		if current == "" {
			_, _ = fmt.Fprintln(out, "No board context set")
			_, _ = fmt.Fprintln(out, "Use 'eval $(kanban use board <board-id>)' to set one")
			return nil
		}
		_, _ = fmt.Fprintf(out, "Current board: %s\n", current)
		return nil
	}

	if clearFlag, _ := cmd.Flags().GetBool("clear"); clearFlag {
		_, _ = fmt.Fprintf(out, "unset %s\n", cli.BoardEnv)
		_, _ = fmt.Fprintln(errOut, "Cleared board context")
		return nil
	}

	if len(args) == 0 {
		return &cli.UsageError{Message: "board ID required\nUsage: eval $(kanban use board <board-id>)"}
	}
	boardID := types.BoardID(args[0])

	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = cliInstance.Close(ctx) }()

	// Validate board exists
	if err := cliInstance.LoadBoard(ctx, boardID); err != nil {
		_, _ = fmt.Fprintf(errOut, "Error: board %s not found\n", boardID)
		_, _ = fmt.Fprintln(errOut, "Suggestion: Use 'kanban board list' to see available boards")
		return err
	}

	// Output shell export command (to stdout for eval)
	_, _ = fmt.Fprintf(out, "export %s=%s\n", cli.BoardEnv, boardID)
	_, _ = fmt.Fprintf(errOut, "Now using board %s: %s\n", boardID, cliInstance.Engine().Board().Name)
	return nil
}
