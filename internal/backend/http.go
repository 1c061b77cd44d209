package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// maxErrorBody caps how much of an error response is kept in StatusError
const maxErrorBody = 512

// MoveRequest is the body of a card move call
type MoveRequest struct {
	ColumnID types.ColumnID `json:"columnId"`
	Order    int            `json:"order"`
}

// HTTPClient talks to the board API served by internal/server
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the API rooted at baseURL. A nil
// httpClient uses a client without timeout; sync calls run to completion.
func NewHTTPClient(baseURL string, httpClient *http.Client) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid backend url %q: scheme must be http or https", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}, nil
}

// Compile-time verification that *HTTPClient implements Store
var _ Store = (*HTTPClient)(nil)

func (c *HTTPClient) GetBoard(ctx context.Context, boardID types.BoardID) (models.Snapshot, error) {
	var snap models.Snapshot
	err := c.do(ctx, http.MethodGet, "/api/boards/"+url.PathEscape(boardID.String()), nil, &snap)
	return snap, err
}

func (c *HTTPClient) ListBoards(ctx context.Context) ([]models.Board, error) {
	var boards []models.Board
	err := c.do(ctx, http.MethodGet, "/api/boards", nil, &boards)
	return boards, err
}

func (c *HTTPClient) CreateBoard(ctx context.Context, board models.Board) (models.Board, error) {
	var created models.Board
	err := c.do(ctx, http.MethodPost, "/api/boards", board, &created)
	return created, err
}

func (c *HTTPClient) CreateColumn(ctx context.Context, column models.Column) (models.Column, error) {
	var created models.Column
	path := "/api/boards/" + url.PathEscape(column.BoardID.String()) + "/columns"
	err := c.do(ctx, http.MethodPost, path, column, &created)
	return created, err
}

func (c *HTTPClient) UpdateColumn(ctx context.Context, column models.Column) error {
	return c.do(ctx, http.MethodPut, "/api/columns/"+url.PathEscape(column.ID.String()), column, nil)
}

func (c *HTTPClient) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	return c.do(ctx, http.MethodDelete, "/api/columns/"+url.PathEscape(id.String()), nil, nil)
}

func (c *HTTPClient) CreateCard(ctx context.Context, card models.Card) (models.Card, error) {
	var created models.Card
	path := "/api/columns/" + url.PathEscape(card.ColumnID.String()) + "/cards"
	err := c.do(ctx, http.MethodPost, path, card, &created)
	return created, err
}

func (c *HTTPClient) UpdateCard(ctx context.Context, card models.Card) error {
	return c.do(ctx, http.MethodPut, "/api/cards/"+url.PathEscape(card.ID.String()), card, nil)
}

func (c *HTTPClient) DeleteCard(ctx context.Context, id types.CardID) error {
	return c.do(ctx, http.MethodDelete, "/api/cards/"+url.PathEscape(id.String()), nil, nil)
}

func (c *HTTPClient) MoveCard(ctx context.Context, id types.CardID, columnID types.ColumnID, order int) error {
	path := "/api/cards/" + url.PathEscape(id.String()) + "/move"
	return c.do(ctx, http.MethodPost, path, MoveRequest{ColumnID: columnID, Order: order}, nil)
}

// do sends a JSON request and decodes a JSON response into out when non-nil.
// Any status outside 2xx becomes a *StatusError.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := sonic.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(msg)),
		}
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
