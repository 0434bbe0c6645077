package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/myday/internal/app"
	"github.com/thenoetrevino/myday/internal/models"
	"github.com/thenoetrevino/myday/internal/testutil"
)

// SetupCLITest creates a temp database and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	return db, app.New(db, app.WithClock(FixedClock))
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, db *sql.DB, date, content, tag string, priority int) int {
	t.Helper()
	return testutil.CreateTestTask(t, db, date, content, tag, priority)
}

// SetTaskStatus wraps testutil.SetTaskStatus for CLI tests
func SetTaskStatus(t *testing.T, db *sql.DB, taskID int, status models.Status) {
	t.Helper()
	testutil.SetTaskStatus(t, db, taskID, status)
}

// CreateTestTag wraps testutil.CreateTestTag for CLI tests
func CreateTestTag(t *testing.T, db *sql.DB, name, color string) {
	t.Helper()
	testutil.CreateTestTag(t, db, name, color)
}
