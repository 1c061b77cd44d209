package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/engine"
	"github.com/thenoetrevino/kanban/internal/logging"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/syncer"
	"github.com/thenoetrevino/kanban/internal/testutil"
	"github.com/thenoetrevino/kanban/internal/types"
	"github.com/thenoetrevino/kanban/internal/user"
)

func loadedEngine(t *testing.T, snap models.Snapshot) *engine.Engine {
	t.Helper()
	fake := testutil.NewFakeBackend(snap)
	coord, err := syncer.New(fake, syncer.WithLogger(logging.Discard()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = coord.Close(context.Background()) })

	e := engine.New(fake, coord, engine.WithLogger(logging.Discard()))
	require.NoError(t, e.LoadBoard(context.Background(), snap.Board.ID))
	return e
}

func TestResolveColumn(t *testing.T) {
	e := loadedEngine(t, testutil.SampleSnapshot())

	tests := []struct {
		name string
		ref  string
		want types.ColumnID
	}{
		{"exact id", "doing", "doing"},
		{"name ignores case", "in progress", "doing"},
		{"id prefix", "do", ""},
		{"unique prefix", "don", "done"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, err := ResolveColumn(e, tt.ref)
			if tt.want == "" {
				var usage *UsageError
				assert.ErrorAs(t, err, &usage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, col.ID)
		})
	}

	_, err := ResolveColumn(e, "Backlog")
	assert.ErrorIs(t, err, engine.ErrColumnNotFound)
	assert.Equal(t, ExitNotFound, ExitCode(err))
}

func TestResolveCard(t *testing.T) {
	snap := testutil.SampleSnapshot()
	snap.Cards = append(snap.Cards,
		models.Card{ID: "card-123", ColumnID: "done", Title: "one", Order: 0},
		models.Card{ID: "card-456", ColumnID: "done", Title: "two", Order: 1},
	)
	e := loadedEngine(t, snap)

	card, err := ResolveCard(e, "card-4")
	require.NoError(t, err)
	assert.Equal(t, types.CardID("card-456"), card.ID)

	card, err = ResolveCard(e, "x")
	require.NoError(t, err)
	assert.Equal(t, "X", card.Title)

	_, err = ResolveCard(e, "card-")
	assert.Equal(t, ExitUsage, ExitCode(err))

	_, err = ResolveCard(e, "nope")
	assert.ErrorIs(t, err, engine.ErrCardNotFound)
}

func TestParseTags(t *testing.T) {
	tags, err := ParseTags([]string{"bug:#ff0000", " docs "})
	require.NoError(t, err)
	assert.Equal(t, []models.Tag{{Name: "bug", Color: "#ff0000"}, {Name: "docs"}}, tags)

	_, err = ParseTags([]string{":#fff"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, ExitDataErr, ExitCode(err))
}

func TestParseAssignees(t *testing.T) {
	got := ParseAssignees([]string{"ann", "bob", "ann", " "}, false)
	assert.Equal(t, []models.Assignee{{Name: "ann"}, {Name: "bob"}}, got)

	got = ParseAssignees(nil, true)
	require.Len(t, got, 1)
	assert.Equal(t, user.GetCurrentUsername(), got[0].Name)
}

func TestParseDueDate(t *testing.T) {
	due, err := ParseDueDate("2026-11-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), *due)

	due, err = ParseDueDate("2026-11-01T10:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 11, 1, 8, 0, 0, 0, time.UTC), *due)

	due, err = ParseDueDate("")
	require.NoError(t, err)
	assert.Nil(t, due)

	_, err = ParseDueDate("next tuesday")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetBoardID(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "x"}
		AddBoardFlag(cmd)
		return cmd
	}

	t.Setenv(BoardEnv, "")
	_, err := GetBoardID(newCmd())
	assert.Equal(t, ExitUsage, ExitCode(err))

	t.Setenv(BoardEnv, "from-env")
	id, err := GetBoardID(newCmd())
	require.NoError(t, err)
	assert.Equal(t, types.BoardID("from-env"), id)

	cmd := newCmd()
	require.NoError(t, cmd.Flags().Set("board", "from-flag"))
	id, err = GetBoardID(cmd)
	require.NoError(t, err)
	assert.Equal(t, types.BoardID("from-flag"), id)
}

func TestConfirm(t *testing.T) {
	for input, want := range map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "": false, "maybe\n": false} {
		cmd := &cobra.Command{Use: "x"}
		var out strings.Builder
		cmd.SetOut(&out)
		cmd.SetIn(strings.NewReader(input))
		assert.Equal(t, want, Confirm(cmd, "Sure?"), "input %q", input)
		assert.Equal(t, "Sure? (y/N): ", out.String())
	}
}
