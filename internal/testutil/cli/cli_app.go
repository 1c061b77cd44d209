package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/app"
	kanbancli "github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is passed through the context so commands skip config loading.
// Stdout and stderr are combined.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, cmd, "", args...)
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with input fed to stdin,
// for commands that ask for confirmation
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, input string, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	err := execute(t, testApp, cmd, input, &buf, &buf, args)
	return buf.String(), err
}

// ExecuteCLICommandSplit executes a CLI command and returns stdout and
// stderr separately, for JSON output checks
func ExecuteCLICommandSplit(t *testing.T, testApp *app.App, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	err := execute(t, testApp, cmd, "", &out, &errOut, args)
	return out.String(), errOut.String(), err
}

func execute(t *testing.T, testApp *app.App, cmd *cobra.Command, input string, out, errOut *bytes.Buffer, args []string) error {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(input))
	testutil.SetupCobraCommand(cmd, args)

	ctx := kanbancli.WithApp(context.Background(), testApp)
	return cmd.ExecuteContext(ctx)
}
