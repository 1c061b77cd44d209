package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"

	"github.com/thenoetrevino/kanban/internal/backend"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// maxBodySize caps request bodies accepted by the API
const maxBodySize = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

// Register wires up all API routes on the provided Echo instance. The routes
// mirror the calls made by backend.HTTPClient.
func Register(e *echo.Echo, store backend.Store, metrics *Metrics, logger *slog.Logger) {
	e.GET("/healthz", healthz())
	e.GET("/api/metrics", getMetrics(metrics))

	e.GET("/api/boards", listBoards(store, logger))
	e.POST("/api/boards", createBoard(store, logger))
	e.GET("/api/boards/:id", getBoard(store, logger))
	e.POST("/api/boards/:id/columns", createColumn(store, logger))

	e.PUT("/api/columns/:id", updateColumn(store, logger))
	e.DELETE("/api/columns/:id", deleteColumn(store, logger))
	e.POST("/api/columns/:id/cards", createCard(store, logger))

	e.PUT("/api/cards/:id", updateCard(store, logger))
	e.DELETE("/api/cards/:id", deleteCard(store, logger))
	e.POST("/api/cards/:id/move", moveCard(store, logger))
}

func healthz() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
}

func getMetrics(metrics *Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, metrics.GetSnapshot())
	}
}

func listBoards(store backend.Store, logger *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		boards, err := store.ListBoards(c.Request().Context())
		if err != nil {
			return writeError(c, logger, err)
		}
		if boards == nil {
			boards = []models.Board{}
		}
		return c.JSON(http.StatusOK, boards)
	}
}

func createBoard(store backend.Store, logger *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var board models.Board
		if err := decodeBody(c, &board); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
		}
		created, err := store.CreateBoard(c.Request().Context(), board)
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func getBoard(store backend.Store, logger *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		snap, err := store.GetBoard(c.Request().Context(), types.BoardID(c.Param("id")))
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusOK, snap)
	}
}

func createColumn(store backend.Store, logger *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var column models.Column
		if err := decodeBody(c, &column); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
		}
		column.BoardID = types.BoardID(c.Param("id"))
		created, err := store.CreateColumn(c.Request().Context(), column)
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func updateColumn(store backend.Store, logger *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var column models.Column
		if err := decodeBody(c, &column); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
		}
		column.ID = types.ColumnID(c.Param("id"))
		if err := store.UpdateColumn(c.Request().Context(), column); err != nil {
			return writeError(c, logger, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func deleteColumn(store backend.Store, logger *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := store.DeleteColumn(c.Request().Context(), types.ColumnID(c.Param("id"))); err != nil {
			return writeError(c, logger, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func createCard(store backend.Store, logger *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var card models.Card
		if err := decodeBody(c, &card); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
		}
		card.ColumnID = types.ColumnID(c.Param("id"))
		created, err := store.CreateCard(c.Request().Context(), card)
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func updateCard(store backend.Store, logger *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var card models.Card
		if err := decodeBody(c, &card); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
		}
		card.ID = types.CardID(c.Param("id"))
		if err := store.UpdateCard(c.Request().Context(), card); err != nil {
			return writeError(c, logger, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func deleteCard(store backend.Store, logger *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := store.DeleteCard(c.Request().Context(), types.CardID(c.Param("id"))); err != nil {
			return writeError(c, logger, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func moveCard(store backend.Store, logger *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req backend.MoveRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
		}
		if req.ColumnID.IsZero() {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "columnId cannot be empty"})
		}
		err := store.MoveCard(c.Request().Context(), types.CardID(c.Param("id")), req.ColumnID, req.Order)
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func decodeBody(c echo.Context, v any) error {
	lr := io.LimitReader(c.Request().Body, maxBodySize)
	dec := sonic.ConfigStd.NewDecoder(lr)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeError maps store errors onto status codes. Unexpected errors are
// logged and hidden from the client.
func writeError(c echo.Context, logger *slog.Logger, err error) error {
	switch {
	case errors.Is(err, models.ErrValidation):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, backend.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		logger.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
