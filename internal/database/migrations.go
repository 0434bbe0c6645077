package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/myday/internal/models"
)

// additiveColumns are columns added to tasks after the first release.
// Older databases get them through ALTER TABLE on startup.
var additiveColumns = []struct {
	name       string
	definition string
}{
	{"priority", "INTEGER DEFAULT 0"},
	{"description", "TEXT DEFAULT ''"},
}

// runMigrations creates the database schema and seeds default data if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS tasks (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				date_str TEXT NOT NULL,
				content TEXT NOT NULL,
				status TEXT NOT NULL,
				tag TEXT NOT NULL,
				priority INTEGER DEFAULT 0,
				description TEXT DEFAULT ''
			)
		`)
		if err != nil {
			return fmt.Errorf("failed to create tasks table: %w", err)
		}

		if err := addMissingColumns(ctx, tx); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS tags (
				name TEXT PRIMARY KEY,
				color TEXT NOT NULL
			)
		`)
		if err != nil {
			return fmt.Errorf("failed to create tags table: %w", err)
		}

		return seedDefaultTags(ctx, tx)
	})
}

// addMissingColumns brings a tasks table created by an older version up to date
func addMissingColumns(ctx context.Context, tx *sql.Tx) error {
	existing, err := tableColumns(ctx, tx, "tasks")
	if err != nil {
		return err
	}

	for _, col := range additiveColumns {
		if existing[col.name] {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE tasks ADD COLUMN %s %s", col.name, col.definition)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to add column %s: %w", col.name, err)
		}
		slog.Info("added missing column", "table", "tasks", "column", col.name)
	}
	return nil
}

// tableColumns returns the set of column names of table
func tableColumns(ctx context.Context, tx *sql.Tx, table string) (map[string]bool, error) {
	rows, err := tx.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s schema: %w", table, err)
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return nil, err
		}
		columns[name] = true
	}
	return columns, rows.Err()
}

// seedDefaultTags inserts the default tags if the tags table is empty
func seedDefaultTags(ctx context.Context, tx *sql.Tx) error {
	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM tags").Scan(&count); err != nil {
		return err
	}

	// If tags exist, don't seed
	if count > 0 {
		return nil
	}

	for _, tag := range models.DefaultTags {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO tags (name, color) VALUES (?, ?)",
			tag.Name, tag.Color,
		)
		if err != nil {
			return fmt.Errorf("failed to seed tag %s: %w", tag.Name, err)
		}
	}

	return nil
}
