package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/myday/internal/models"
)

// DataRepo handles whole-database operations: statistics, bulk import and backups
type DataRepo struct {
	db *sql.DB
}

// Stats counts all tasks, done tasks and high priority tasks
func (r *DataRepo) Stats(ctx context.Context) (models.Stats, error) {
	var total, done, high int
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status IN (?, ?) THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN priority >= ? THEN 1 ELSE 0 END), 0)
		FROM tasks`,
		string(models.StatusDone), "DONE", models.HighPriorityThreshold,
	).Scan(&total, &done, &high)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to compute statistics: %w", err)
	}
	return models.NewStats(total, done, high), nil
}

// Import adds tags (skipping names that already exist) and appends tasks as
// new rows with fresh IDs, all in one transaction. It returns the number of
// tasks inserted.
func (r *DataRepo) Import(ctx context.Context, tags []models.Tag, tasks []models.Task) (int, error) {
	count := 0
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, tag := range tags {
			_, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO tags (name, color) VALUES (?, ?)`,
				tag.Name, tag.Color,
			)
			if err != nil {
				return fmt.Errorf("failed to import tag %q: %w", tag.Name, err)
			}
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO tasks (date_str, content, status, tag, priority, description) VALUES (?, ?, ?, ?, ?, ?)`,
		)
		if err != nil {
			return fmt.Errorf("failed to prepare task import: %w", err)
		}
		defer stmt.Close()

		for _, task := range tasks {
			_, err := stmt.ExecContext(ctx,
				task.DateStr, task.Content, string(task.Status), task.Tag, task.Priority, task.Description,
			)
			if err != nil {
				return fmt.Errorf("failed to import task %q: %w", task.Content, err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Backup writes a consistent copy of the database to destPath, which must
// not exist yet
func (r *DataRepo) Backup(ctx context.Context, destPath string) error {
	if _, err := r.db.ExecContext(ctx, `VACUUM INTO ?`, destPath); err != nil {
		return fmt.Errorf("failed to back up database to %s: %w", destPath, err)
	}
	return nil
}
