package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// BoardRepo handles board-level database operations
type BoardRepo struct {
	db *sql.DB
}

// ListBoards returns every board ordered by creation time
func (r *BoardRepo) ListBoards(ctx context.Context) ([]models.Board, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description FROM boards ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("querying boards: %w", err)
	}
	defer func() { _ = rows.Close() }()

	boards := []models.Board{}
	for rows.Next() {
		var b models.Board
		if err := rows.Scan(&b.ID, &b.Name, &b.Description); err != nil {
			return nil, fmt.Errorf("scanning board row: %w", err)
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

// CreateBoard stores a board and seeds it with the default columns. An empty
// ID gets a generated one.
func (r *BoardRepo) CreateBoard(ctx context.Context, board models.Board) (models.Board, error) {
	if err := models.RequireNonEmpty("name", board.Name); err != nil {
		return models.Board{}, err
	}
	if board.ID.IsZero() {
		board.ID = types.BoardID(uuid.NewString())
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO boards (id, name, description) VALUES (?, ?, ?)`,
			board.ID, board.Name, board.Description,
		); err != nil {
			return fmt.Errorf("inserting board: %w", err)
		}
		return seedDefaultColumns(ctx, tx, board.ID)
	})
	if err != nil {
		return models.Board{}, err
	}
	return board, nil
}

// seedDefaultColumns inserts the default columns into a new board
func seedDefaultColumns(ctx context.Context, tx *sql.Tx, boardID types.BoardID) error {
	for i, col := range models.DefaultColumns {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO columns (id, board_id, name, color, position, is_done) VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), boardID, col.Name, col.Color, i, col.IsDone,
		)
		if err != nil {
			return fmt.Errorf("seeding column %q: %w", col.Name, err)
		}
	}
	return nil
}

// GetBoard loads a board with its columns and cards, both sorted by position
func (r *BoardRepo) GetBoard(ctx context.Context, boardID types.BoardID) (models.Snapshot, error) {
	var snap models.Snapshot
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description FROM boards WHERE id = ?`, boardID,
	).Scan(&snap.Board.ID, &snap.Board.Name, &snap.Board.Description)
	if err != nil {
		return models.Snapshot{}, notFound(err, "board", boardID.String())
	}

	if snap.Columns, err = r.columns(ctx, boardID); err != nil {
		return models.Snapshot{}, err
	}
	if snap.Cards, err = r.cards(ctx, boardID); err != nil {
		return models.Snapshot{}, err
	}
	return snap, nil
}

func (r *BoardRepo) columns(ctx context.Context, boardID types.BoardID) ([]models.Column, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, board_id, name, color, position, wip_limit, is_done
		 FROM columns WHERE board_id = ? ORDER BY position, id`, boardID)
	if err != nil {
		return nil, fmt.Errorf("querying columns for board: %w", err)
	}
	defer func() { _ = rows.Close() }()

	columns := []models.Column{}
	for rows.Next() {
		var c models.Column
		var wip sql.NullInt64
		if err := rows.Scan(&c.ID, &c.BoardID, &c.Name, &c.Color, &c.Order, &wip, &c.IsDone); err != nil {
			return nil, fmt.Errorf("scanning column row: %w", err)
		}
		c.WipLimit = nullInt64ToPtr(wip)
		columns = append(columns, c)
	}
	return columns, rows.Err()
}

func (r *BoardRepo) cards(ctx context.Context, boardID types.BoardID) ([]models.Card, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT k.id, k.column_id, k.title, k.description, k.priority, k.due_date,
		        k.attachment_count, k.comment_count, k.position
		 FROM cards k JOIN columns c ON c.id = k.column_id
		 WHERE c.board_id = ?
		 ORDER BY c.position, k.position`, boardID)
	if err != nil {
		return nil, fmt.Errorf("querying cards for board: %w", err)
	}

	cards := []models.Card{}
	index := make(map[types.CardID]int)
	for rows.Next() {
		var k models.Card
		var due sql.NullTime
		if err := rows.Scan(&k.ID, &k.ColumnID, &k.Title, &k.Description, &k.Priority, &due,
			&k.AttachmentCount, &k.CommentCount, &k.Order); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scanning card row: %w", err)
		}
		k.DueDate = nullTimeToPtr(due)
		index[k.ID] = len(cards)
		cards = append(cards, k)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	_ = rows.Close()

	if err := r.attachTags(ctx, boardID, cards, index); err != nil {
		return nil, err
	}
	if err := r.attachAssignees(ctx, boardID, cards, index); err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *BoardRepo) attachTags(ctx context.Context, boardID types.BoardID, cards []models.Card, index map[types.CardID]int) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT t.card_id, t.name, t.color
		 FROM card_tags t
		 JOIN cards k ON k.id = t.card_id
		 JOIN columns c ON c.id = k.column_id
		 WHERE c.board_id = ?
		 ORDER BY t.card_id, t.position`, boardID)
	if err != nil {
		return fmt.Errorf("querying tags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var cardID types.CardID
		var tag models.Tag
		if err := rows.Scan(&cardID, &tag.Name, &tag.Color); err != nil {
			return fmt.Errorf("scanning tag row: %w", err)
		}
		if i, ok := index[cardID]; ok {
			cards[i].Tags = append(cards[i].Tags, tag)
		}
	}
	return rows.Err()
}

func (r *BoardRepo) attachAssignees(ctx context.Context, boardID types.BoardID, cards []models.Card, index map[types.CardID]int) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT a.card_id, a.name, a.avatar
		 FROM card_assignees a
		 JOIN cards k ON k.id = a.card_id
		 JOIN columns c ON c.id = k.column_id
		 WHERE c.board_id = ?
		 ORDER BY a.card_id, a.position`, boardID)
	if err != nil {
		return fmt.Errorf("querying assignees: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var cardID types.CardID
		var a models.Assignee
		if err := rows.Scan(&cardID, &a.Name, &a.Avatar); err != nil {
			return fmt.Errorf("scanning assignee row: %w", err)
		}
		if i, ok := index[cardID]; ok {
			cards[i].Assignees = append(cards[i].Assignees, a)
		}
	}
	return rows.Err()
}
