package database

import (
	"context"
	"database/sql"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS boards (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS columns (
		id TEXT PRIMARY KEY,
		board_id TEXT NOT NULL,
		name TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL,
		wip_limit INTEGER,
		is_done INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_columns_board ON columns(board_id, position)`,
	`CREATE TABLE IF NOT EXISTS cards (
		id TEXT PRIMARY KEY,
		column_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		priority TEXT NOT NULL DEFAULT 'medium',
		due_date DATETIME,
		attachment_count INTEGER NOT NULL DEFAULT 0,
		comment_count INTEGER NOT NULL DEFAULT 0,
		position INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (column_id) REFERENCES columns(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cards_column ON cards(column_id, position)`,
	`CREATE TABLE IF NOT EXISTS card_tags (
		card_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (card_id, position),
		FOREIGN KEY (card_id) REFERENCES cards(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS card_assignees (
		card_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		avatar TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (card_id, position),
		FOREIGN KEY (card_id) REFERENCES cards(id) ON DELETE CASCADE
	)`,
}

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}
