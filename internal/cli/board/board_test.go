package board

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/testutil"
	clitest "github.com/thenoetrevino/kanban/internal/testutil/cli"
	"github.com/thenoetrevino/kanban/internal/types"
)

func TestBoardCreateAndList(t *testing.T) {
	repo, testApp := clitest.SetupCLITest(t)

	stdout, _, err := clitest.ExecuteCLICommandSplit(t, testApp, BoardCmd(),
		"create", "--name", "Launch", "--description", "Q4", "--quiet")
	require.NoError(t, err)
	id := types.BoardID(strings.TrimSpace(stdout))
	require.False(t, id.IsZero())

	snap, err := repo.GetBoard(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Launch", snap.Board.Name)
	assert.Equal(t, "Q4", snap.Board.Description)
	require.Len(t, snap.Columns, 3)

	output, err := clitest.ExecuteCLICommand(t, testApp, BoardCmd(), "list")
	require.NoError(t, err)
	assert.Contains(t, output, "Boards:")
	assert.Contains(t, output, id.String()+"  Launch")

	stdout, _, err = clitest.ExecuteCLICommandSplit(t, testApp, BoardCmd(), "list", "--json")
	require.NoError(t, err)
	result := testutil.ParseJSON(t, stdout)
	boards := result["data"].([]any)
	require.Len(t, boards, 1)
	assert.Equal(t, id.String(), boards[0].(map[string]any)["id"])
}

func TestBoardList_Empty(t *testing.T) {
	_, testApp := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, testApp, BoardCmd(), "list")
	require.NoError(t, err)
	assert.Contains(t, output, "No boards found")

	stdout, _, err := clitest.ExecuteCLICommandSplit(t, testApp, BoardCmd(), "list", "--json")
	require.NoError(t, err)
	assert.Equal(t, []any{}, testutil.ParseJSON(t, stdout)["data"])
}

func TestBoardCreate_EmptyName(t *testing.T) {
	repo, testApp := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, testApp, BoardCmd(), "create")
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	boards, err := repo.ListBoards(context.Background())
	require.NoError(t, err)
	assert.Empty(t, boards)
}

func TestBoardList_SimulatedHasNoDirectory(t *testing.T) {
	testApp := clitest.SetupSimulatedCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, testApp, BoardCmd(), "list")
	require.Error(t, err)
	assert.True(t, errors.Is(err, app.ErrNoDirectory))
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
}

func TestBoardShow_Plain(t *testing.T) {
	repo, testApp := clitest.SetupCLITest(t)
	snap := clitest.CreateTestBoard(t, repo, "Sprint")
	first := clitest.CreateTestCard(t, repo, snap.Columns[0], "Write docs")
	clitest.CreateTestCard(t, repo, snap.Columns[0], "Ship")

	output, err := clitest.ExecuteCLICommand(t, testApp, BoardCmd(),
		"show", "--board", snap.Board.ID.String(), "--plain")
	require.NoError(t, err)

	assert.Contains(t, output, "Sprint ["+snap.Board.ID.String()+"]")
	assert.Contains(t, output, "To Do (2)")
	assert.Contains(t, output, "  1. Write docs [medium]  ("+first.ID.String()+")")
	assert.Contains(t, output, "Done (0) [done]")
}

func TestBoardShow_JSONAndQuiet(t *testing.T) {
	repo, testApp := clitest.SetupCLITest(t)
	snap := clitest.CreateTestBoard(t, repo, "Sprint")
	card := clitest.CreateTestCard(t, repo, snap.Columns[1], "Review")

	stdout, _, err := clitest.ExecuteCLICommandSplit(t, testApp, BoardCmd(),
		"show", "--board", snap.Board.ID.String(), "--json")
	require.NoError(t, err)
	data := testutil.ParseJSON(t, stdout)["data"].(map[string]any)
	assert.Equal(t, "Sprint", data["board"].(map[string]any)["name"])
	assert.Len(t, data["columns"], 3)
	assert.Len(t, data["cards"], 1)

	stdout, _, err = clitest.ExecuteCLICommandSplit(t, testApp, BoardCmd(),
		"show", "--board", snap.Board.ID.String(), "--quiet")
	require.NoError(t, err)
	assert.Equal(t, card.ID.String(), strings.TrimSpace(stdout))
}

func TestBoardShow_BoardFromEnv(t *testing.T) {
	repo, testApp := clitest.SetupCLITest(t)
	snap := clitest.CreateTestBoard(t, repo, "From env")
	t.Setenv(cli.BoardEnv, snap.Board.ID.String())

	output, err := clitest.ExecuteCLICommand(t, testApp, BoardCmd(), "show", "--plain")
	require.NoError(t, err)
	assert.Contains(t, output, "From env [")
}

func TestBoardShow_UnknownBoard(t *testing.T) {
	_, testApp := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, testApp, BoardCmd(), "show", "--board", "missing")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.Contains(t, output, "❌ Error:")
}
