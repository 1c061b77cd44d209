// Package cmd wires the kanban subcommands into the root command
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/board"
	"github.com/thenoetrevino/kanban/internal/cli/card"
	"github.com/thenoetrevino/kanban/internal/cli/column"
	"github.com/thenoetrevino/kanban/internal/cli/serve"
	"github.com/thenoetrevino/kanban/internal/cli/setup"
	"github.com/thenoetrevino/kanban/internal/cli/use"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/logging"
)

var logCloser io.Closer

var rootCmd = NewRootCmd()

// NewRootCmd builds the kanban command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kanban",
		Short: "Kanban - ordered boards synced against a store",
		Long: `Kanban manages boards of ordered columns and cards. Every change is
applied locally first and then synced to the configured store; when the
store is unreachable the change is kept and reported as "(mock)".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initLogging,
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cli.UsageError{Message: err.Error()}
	})

	root.AddCommand(board.BoardCmd())
	root.AddCommand(column.ColumnCmd())
	root.AddCommand(card.CardCmd())
	root.AddCommand(use.UseCmd())
	root.AddCommand(setup.SetupCmd())
	root.AddCommand(serve.ServeCmd())

	return root
}

// initLogging sends slog output to the configured log file
func initLogging(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	closer, err := logging.Init(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		// Logging is best effort; commands still work without a log file
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
		return nil
	}
	logCloser = closer
	return nil
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	err := rootCmd.ExecuteContext(ctx)
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err != nil && !cli.Reported(err) {
		_, _ = fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
