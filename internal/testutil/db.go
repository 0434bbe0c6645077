package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/myday/internal/database"
	"github.com/thenoetrevino/myday/internal/models"
)

// SetupTestDB creates a migrated database file in a per-test temp dir.
// The default tags are seeded. The handle is closed on cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "myday.db")
	db, err := database.InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// CreateTestTask inserts a task and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, date, content, tag string, priority int) int {
	t.Helper()

	result, err := db.ExecContext(context.Background(),
		`INSERT INTO tasks (date_str, content, status, tag, priority, description) VALUES (?, ?, ?, ?, ?, '')`,
		date, content, models.StatusTodo, tag, priority)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}

	id, _ := result.LastInsertId()
	return int(id)
}

// SetTaskStatus overwrites a task's status directly
func SetTaskStatus(t *testing.T, db *sql.DB, taskID int, status models.Status) {
	t.Helper()

	if _, err := db.ExecContext(context.Background(), `UPDATE tasks SET status = ? WHERE id = ?`, status, taskID); err != nil {
		t.Fatalf("Failed to set task status: %v", err)
	}
}

// CreateTestTag inserts a tag, ignoring duplicates
func CreateTestTag(t *testing.T, db *sql.DB, name, color string) {
	t.Helper()

	if _, err := db.ExecContext(context.Background(), `INSERT OR IGNORE INTO tags (name, color) VALUES (?, ?)`, name, color); err != nil {
		t.Fatalf("Failed to create test tag: %v", err)
	}
}
