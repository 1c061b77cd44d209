package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/config"
)

// ConfigCmd returns the setup config subcommand
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write a config file with the default settings",
		Long: `Write the effective settings (defaults plus environment overrides) to
the config file, so they can be edited.

Examples:
  # Write the config file unless one exists
  kanban setup config

  # Show where the config file lives and whether it exists
  kanban setup config --check

  # Overwrite an existing config file
  kanban setup config --force
`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}

	cmd.Flags().Bool("check", false, "Only report the config file location")
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path, err := config.Path()
	if err != nil {
		return err
	}
	_, statErr := os.Stat(path)
	exists := statErr == nil
	if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		return statErr
	}

	if check, _ := cmd.Flags().GetBool("check"); check {
		state := "missing"
		if exists {
			state = "present"
		}
		_, _ = fmt.Fprintf(out, "Config file: %s (%s)\n", path, state)
		return nil
	}

	force, _ := cmd.Flags().GetBool("force")
	if exists && !force {
		_, _ = fmt.Fprintf(out, "Config file already exists: %s\n", path)
		_, _ = fmt.Fprintln(out, "Use --force to overwrite it")
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	_, _ = fmt.Fprintf(out, "✓ Config written to %s\n", path)
	return nil
}
