package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/myday/internal/models"
)

// taskColumns is the select list every task query scans with scanTask
const taskColumns = `id, date_str, content, status, tag, COALESCE(priority, 0), COALESCE(description, '')`

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(s rowScanner) (*models.Task, error) {
	task := &models.Task{}
	var status string
	err := s.Scan(
		&task.ID,
		&task.DateStr,
		&task.Content,
		&status,
		&task.Tag,
		&task.Priority,
		&task.Description,
	)
	if err != nil {
		return nil, err
	}
	task.Status = models.Status(status)
	return task, nil
}

// scanTasks drains rows into tasks and closes them
func scanTasks(rows *sql.Rows) ([]*models.Task, error) {
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// inClause builds "?, ?, ?" for n values together with the matching args
func inClause(values []string) (string, []any) {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", "), args
}
