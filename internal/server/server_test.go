package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/backend"
	"github.com/thenoetrevino/kanban/internal/logging"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/testutil"
	"github.com/thenoetrevino/kanban/internal/types"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server, models.Snapshot) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	snap := testutil.CreateTestBoard(t, repo, "Launch")

	srv := New(":0", repo, nil, logging.Discard())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts, snap
}

func newTestClient(t *testing.T, ts *httptest.Server) *backend.HTTPClient {
	t.Helper()
	client, err := backend.NewHTTPClient(ts.URL, ts.Client())
	require.NoError(t, err)
	return client
}

func TestHealthz(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestGetBoard_ReturnsSnapshot(t *testing.T) {
	srv, _, snap := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/boards/"+snap.Board.ID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Snapshot
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, snap.Board, got.Board)
	require.Len(t, got.Columns, 3)
	assert.Equal(t, "To Do", got.Columns[0].Name)
}

func TestGetBoard_UnknownIs404(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/boards/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBoard_ValidationIs400(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/boards", strings.NewReader(`{"name":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name")
}

func TestCreateColumn_RejectsUnknownFields(t *testing.T) {
	srv, _, snap := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/boards/"+snap.Board.ID.String()+"/columns",
		strings.NewReader(`{"name":"Review","bogus":true}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMoveCard_RequiresColumn(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cards/whatever/move", strings.NewReader(`{"order":1}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTPClientRoundTrip(t *testing.T) {
	_, ts, snap := newTestServer(t)
	client := newTestClient(t, ts)
	ctx := context.Background()

	todo := snap.Columns[0]
	done := snap.Columns[2]

	col, err := client.CreateColumn(ctx, models.Column{ID: "review", BoardID: snap.Board.ID, Name: "Review"})
	require.NoError(t, err)
	assert.Equal(t, types.ColumnID("review"), col.ID)
	assert.Equal(t, 3, col.Order)

	first, err := client.CreateCard(ctx, models.Card{ID: "c1", ColumnID: todo.ID, Title: "Write docs"})
	require.NoError(t, err)
	_, err = client.CreateCard(ctx, models.Card{ID: "c2", ColumnID: todo.ID, Title: "Ship it"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPriority, first.Priority)

	first.Title = "Write better docs"
	first.Tags = []models.Tag{{Name: "docs", Color: "#00f"}}
	require.NoError(t, client.UpdateCard(ctx, first))
	require.NoError(t, client.MoveCard(ctx, "c1", done.ID, 0))

	got, err := client.GetBoard(ctx, snap.Board.ID)
	require.NoError(t, err)
	require.Len(t, got.Cards, 2)
	byID := map[types.CardID]models.Card{}
	for _, c := range got.Cards {
		byID[c.ID] = c
	}
	assert.Equal(t, done.ID, byID["c1"].ColumnID)
	assert.Equal(t, "Write better docs", byID["c1"].Title)
	assert.Equal(t, []models.Tag{{Name: "docs", Color: "#00f"}}, byID["c1"].Tags)
	assert.Equal(t, 0, byID["c2"].Order)

	require.NoError(t, client.DeleteCard(ctx, "c2"))
	require.NoError(t, client.DeleteColumn(ctx, "review"))

	err = client.DeleteCard(ctx, "c2")
	assert.ErrorIs(t, err, backend.ErrNotFound)

	boards, err := client.ListBoards(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "Launch", boards[0].Name)
}

func TestMetricsCountRequestsAndFailures(t *testing.T) {
	srv, ts, snap := newTestServer(t)
	client := newTestClient(t, ts)
	ctx := context.Background()

	_, err := client.GetBoard(ctx, snap.Board.ID)
	require.NoError(t, err)
	_, err = client.GetBoard(ctx, "missing")
	require.Error(t, err)

	m := srv.Metrics().GetSnapshot()
	assert.Equal(t, int64(2), m.Requests)
	assert.Equal(t, int64(1), m.Failures)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var body MetricsSnapshot
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(2), body.Requests)
}

func TestStart_StopsOnCancel(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	srv := New("127.0.0.1:0", repo, nil, logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()
	cancel()

	require.NoError(t, <-done)
}
