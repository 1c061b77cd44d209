package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/models"
)

type recordedRequest struct {
	method string
	path   string
	body   []byte
}

// newTestServer answers every request with status and body, recording requests
func newTestServer(t *testing.T, status int, body string) (*HTTPClient, *[]recordedRequest) {
	t.Helper()
	var reqs []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		reqs = append(reqs, recordedRequest{method: r.Method, path: r.URL.EscapedPath(), body: data})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	client, err := NewHTTPClient(srv.URL+"/", nil)
	require.NoError(t, err)
	return client, &reqs
}

func TestNewHTTPClient_RejectsBadURL(t *testing.T) {
	_, err := NewHTTPClient("ftp://example.com", nil)
	assert.Error(t, err)

	_, err = NewHTTPClient("://bad", nil)
	assert.Error(t, err)
}

func TestHTTPClient_GetBoard(t *testing.T) {
	client, reqs := newTestServer(t, http.StatusOK, `{
		"board": {"id": "b1", "name": "Roadmap"},
		"columns": [{"id": "c1", "boardId": "b1", "name": "To Do", "order": 0, "wipLimit": 3}],
		"cards": [{"id": "k1", "columnId": "c1", "title": "Ship", "priority": "high", "order": 0}]
	}`)

	snap, err := client.GetBoard(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "Roadmap", snap.Board.Name)
	require.Len(t, snap.Columns, 1)
	require.NotNil(t, snap.Columns[0].WipLimit)
	assert.Equal(t, 3, *snap.Columns[0].WipLimit)
	require.Len(t, snap.Cards, 1)
	assert.Equal(t, models.PriorityHigh, snap.Cards[0].Priority)

	require.Len(t, *reqs, 1)
	assert.Equal(t, http.MethodGet, (*reqs)[0].method)
	assert.Equal(t, "/api/boards/b1", (*reqs)[0].path)
}

func TestHTTPClient_MoveCardSendsAbsoluteDestination(t *testing.T) {
	client, reqs := newTestServer(t, http.StatusNoContent, "")

	err := client.MoveCard(context.Background(), "card/1", "col-2", 4)

	require.NoError(t, err)
	require.Len(t, *reqs, 1)
	req := (*reqs)[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/api/cards/card%2F1/move", req.path)

	var body MoveRequest
	require.NoError(t, sonic.Unmarshal(req.body, &body))
	assert.Equal(t, MoveRequest{ColumnID: "col-2", Order: 4}, body)
}

func TestHTTPClient_CreateCardRoutesByColumn(t *testing.T) {
	client, reqs := newTestServer(t, http.StatusCreated, `{"id": "server-id", "columnId": "c1", "title": "T"}`)

	created, err := client.CreateCard(context.Background(), models.Card{ID: "local", ColumnID: "c1", Title: "T"})

	require.NoError(t, err)
	assert.Equal(t, "server-id", created.ID.String())
	assert.Equal(t, "/api/columns/c1/cards", (*reqs)[0].path)
}

func TestHTTPClient_NonSuccessStatus(t *testing.T) {
	client, _ := newTestServer(t, http.StatusInternalServerError, "boom")

	err := client.DeleteCard(context.Background(), "k1")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Equal(t, "boom", statusErr.Body)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestHTTPClient_NotFoundMatchesSentinel(t *testing.T) {
	client, _ := newTestServer(t, http.StatusNotFound, "")

	_, err := client.GetBoard(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client, err := NewHTTPClient(srv.URL, nil)
	require.NoError(t, err)
	srv.Close()

	err = client.UpdateCard(context.Background(), models.Card{ID: "k1"})
	assert.Error(t, err)
}
