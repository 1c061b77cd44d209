package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// ColumnRepo handles all column-related database operations.
type ColumnRepo struct {
	db *sql.DB
}

// CreateColumn appends a column to its board. The caller's ID is kept when
// set; the position is always one past the board's highest so that orders
// stay unique even after a deletion left a gap.
func (r *ColumnRepo) CreateColumn(ctx context.Context, column models.Column) (models.Column, error) {
	if err := models.RequireNonEmpty("name", column.Name); err != nil {
		return models.Column{}, err
	}
	if column.ID.IsZero() {
		column.ID = types.ColumnID(uuid.NewString())
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT 1 FROM boards WHERE id = ?`, column.BoardID,
		).Scan(&exists); err != nil {
			return notFound(err, "board", column.BoardID.String())
		}

		if err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(position) + 1, 0) FROM columns WHERE board_id = ?`, column.BoardID,
		).Scan(&column.Order); err != nil {
			return fmt.Errorf("computing column position: %w", err)
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO columns (id, board_id, name, color, position, wip_limit, is_done)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			column.ID, column.BoardID, column.Name, column.Color, column.Order,
			intPtrToNull(column.WipLimit), column.IsDone,
		)
		if err != nil {
			return fmt.Errorf("inserting column: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Column{}, err
	}
	return column, nil
}

// UpdateColumn overwrites a column's editable fields and position. The board
// a column belongs to never changes.
func (r *ColumnRepo) UpdateColumn(ctx context.Context, column models.Column) error {
	if err := models.RequireNonEmpty("name", column.Name); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE columns SET name = ?, color = ?, position = ?, wip_limit = ?, is_done = ? WHERE id = ?`,
		column.Name, column.Color, column.Order, intPtrToNull(column.WipLimit), column.IsDone, column.ID,
	)
	if err != nil {
		return fmt.Errorf("updating column: %w", err)
	}
	return requireAffected(res, "column", column.ID.String())
}

// DeleteColumn removes a column and, through the foreign key cascade, its
// cards. Sibling columns keep their positions.
func (r *ColumnRepo) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM columns WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting column: %w", err)
	}
	return requireAffected(res, "column", id.String())
}

// BoardIDForColumn returns the board a column belongs to
func (r *ColumnRepo) BoardIDForColumn(ctx context.Context, id types.ColumnID) (types.BoardID, error) {
	var boardID types.BoardID
	err := r.db.QueryRowContext(ctx, `SELECT board_id FROM columns WHERE id = ?`, id).Scan(&boardID)
	if err != nil {
		return "", notFound(err, "column", id.String())
	}
	return boardID, nil
}
