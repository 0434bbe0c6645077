package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/myday/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates a file-backed database in a temp dir and runs migrations.
// Default tags are seeded.
func setupTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "myday.db")

	db, err := InitDB(context.Background(), dbPath)
	require.NoError(t, err, "failed to create test database")
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db, dbPath
}

// setupTestRepo returns a Repository over a fresh database
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, _ := setupTestDB(t)
	return NewRepository(db)
}

// createTask inserts a todo task and returns its ID
func createTask(t *testing.T, repo *Repository, date, content, tag string, priority int) int {
	t.Helper()
	task, err := repo.AddTask(context.Background(), date, content, models.StatusTodo, tag, priority, "")
	require.NoError(t, err)
	return task.ID
}

func taskIDs(tasks []*models.Task) []int {
	ids := make([]int, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return ids
}
