package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// CardRepo handles all card-related database operations. Every mutation that
// changes membership of a column renumbers it so positions stay 0..n-1.
type CardRepo struct {
	db *sql.DB
}

// CreateCard appends a card to its column. The caller's ID is kept when set.
func (r *CardRepo) CreateCard(ctx context.Context, card models.Card) (models.Card, error) {
	if err := models.RequireNonEmpty("title", card.Title); err != nil {
		return models.Card{}, err
	}
	if card.Priority == "" {
		card.Priority = models.DefaultPriority
	}
	if !card.Priority.Valid() {
		return models.Card{}, &models.ValidationError{Field: "priority", Message: "is not a known priority"}
	}
	if card.ID.IsZero() {
		card.ID = types.CardID(uuid.NewString())
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT 1 FROM columns WHERE id = ?`, card.ColumnID,
		).Scan(&exists); err != nil {
			return notFound(err, "column", card.ColumnID.String())
		}

		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM cards WHERE column_id = ?`, card.ColumnID,
		).Scan(&card.Order); err != nil {
			return fmt.Errorf("counting cards: %w", err)
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO cards (id, column_id, title, description, priority, due_date,
			                    attachment_count, comment_count, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			card.ID, card.ColumnID, card.Title, card.Description, card.Priority,
			timePtrToNull(card.DueDate), card.AttachmentCount, card.CommentCount, card.Order,
		)
		if err != nil {
			return fmt.Errorf("inserting card: %w", err)
		}
		return replaceCardLists(ctx, tx, card)
	})
	if err != nil {
		return models.Card{}, err
	}
	return card, nil
}

// UpdateCard overwrites a card's content. Column and position are left to
// MoveCard.
func (r *CardRepo) UpdateCard(ctx context.Context, card models.Card) error {
	if err := models.RequireNonEmpty("title", card.Title); err != nil {
		return err
	}
	if card.Priority == "" {
		card.Priority = models.DefaultPriority
	}
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE cards
			 SET title = ?, description = ?, priority = ?, due_date = ?,
			     attachment_count = ?, comment_count = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			card.Title, card.Description, card.Priority, timePtrToNull(card.DueDate),
			card.AttachmentCount, card.CommentCount, card.ID,
		)
		if err != nil {
			return fmt.Errorf("updating card: %w", err)
		}
		if err := requireAffected(res, "card", card.ID.String()); err != nil {
			return err
		}
		return replaceCardLists(ctx, tx, card)
	})
}

// MoveCard places a card at order within columnID, clamping order to the
// column's bounds, and renumbers both the source and destination columns
func (r *CardRepo) MoveCard(ctx context.Context, id types.CardID, columnID types.ColumnID, order int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var source types.ColumnID
		var sourceBoard types.BoardID
		err := tx.QueryRowContext(ctx,
			`SELECT k.column_id, c.board_id FROM cards k JOIN columns c ON c.id = k.column_id WHERE k.id = ?`, id,
		).Scan(&source, &sourceBoard)
		if err != nil {
			return notFound(err, "card", id.String())
		}

		var destBoard types.BoardID
		err = tx.QueryRowContext(ctx, `SELECT board_id FROM columns WHERE id = ?`, columnID).Scan(&destBoard)
		if err != nil {
			return notFound(err, "column", columnID.String())
		}
		if destBoard != sourceBoard {
			return &models.ValidationError{Field: "columnId", Message: "belongs to a different board"}
		}

		dest, err := queryIDs(ctx, tx,
			`SELECT id FROM cards WHERE column_id = ? AND id <> ? ORDER BY position, id`, columnID, id)
		if err != nil {
			return fmt.Errorf("loading destination column: %w", err)
		}
		order = max(0, min(order, len(dest)))
		dest = append(dest[:order], append([]string{id.String()}, dest[order:]...)...)

		if _, err := tx.ExecContext(ctx,
			`UPDATE cards SET column_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, columnID, id,
		); err != nil {
			return fmt.Errorf("moving card: %w", err)
		}
		if err := renumber(ctx, tx, "cards", dest); err != nil {
			return err
		}
		if source == columnID {
			return nil
		}
		return renumberColumn(ctx, tx, source)
	})
}

// DeleteCard removes a card and closes the gap it leaves in its column
func (r *CardRepo) DeleteCard(ctx context.Context, id types.CardID) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var columnID types.ColumnID
		if err := tx.QueryRowContext(ctx, `SELECT column_id FROM cards WHERE id = ?`, id).Scan(&columnID); err != nil {
			return notFound(err, "card", id.String())
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id); err != nil {
			return fmt.Errorf("deleting card: %w", err)
		}
		return renumberColumn(ctx, tx, columnID)
	})
}

// BoardIDForCard returns the board a card belongs to
func (r *CardRepo) BoardIDForCard(ctx context.Context, id types.CardID) (types.BoardID, error) {
	var boardID types.BoardID
	err := r.db.QueryRowContext(ctx,
		`SELECT c.board_id FROM cards k JOIN columns c ON c.id = k.column_id WHERE k.id = ?`, id,
	).Scan(&boardID)
	if err != nil {
		return "", notFound(err, "card", id.String())
	}
	return boardID, nil
}

func renumberColumn(ctx context.Context, tx *sql.Tx, columnID types.ColumnID) error {
	ids, err := queryIDs(ctx, tx, `SELECT id FROM cards WHERE column_id = ? ORDER BY position, id`, columnID)
	if err != nil {
		return fmt.Errorf("loading column %s: %w", columnID, err)
	}
	return renumber(ctx, tx, "cards", ids)
}

// replaceCardLists rewrites the tags and assignees of a card
func replaceCardLists(ctx context.Context, tx *sql.Tx, card models.Card) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM card_tags WHERE card_id = ?`, card.ID); err != nil {
		return fmt.Errorf("clearing tags: %w", err)
	}
	for i, tag := range card.Tags {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO card_tags (card_id, position, name, color) VALUES (?, ?, ?, ?)`,
			card.ID, i, tag.Name, tag.Color,
		); err != nil {
			return fmt.Errorf("inserting tag %q: %w", tag.Name, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM card_assignees WHERE card_id = ?`, card.ID); err != nil {
		return fmt.Errorf("clearing assignees: %w", err)
	}
	for i, a := range card.Assignees {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO card_assignees (card_id, position, name, avatar) VALUES (?, ?, ?, ?)`,
			card.ID, i, a.Name, a.Avatar,
		); err != nil {
			return fmt.Errorf("inserting assignee %q: %w", a.Name, err)
		}
	}
	return nil
}
