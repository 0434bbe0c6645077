package task

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mydaycli "github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/config"
	"github.com/thenoetrevino/myday/internal/testutil/cli"
)

func TestDeleteCmd(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	count := func(id int) int {
		var n int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM tasks WHERE id = ?", id).Scan(&n))
		return n
	}

	t.Run("declined prompt keeps the task", func(t *testing.T) {
		taskID := cli.CreateTestTask(t, db, "2024-05-01", "keep", "工作", 0)
		output, err := cli.ExecuteCLICommandWithInput(t, app, nil, "n\n", DeleteCmd(), []string{fmt.Sprint(taskID)})
		require.NoError(t, err)
		assert.Contains(t, output, "Deletion cancelled")
		assert.Equal(t, 1, count(taskID))
	})

	t.Run("confirmed prompt deletes", func(t *testing.T) {
		taskID := cli.CreateTestTask(t, db, "2024-05-01", "drop", "工作", 0)
		output, err := cli.ExecuteCLICommandWithInput(t, app, nil, "y\n", DeleteCmd(), []string{fmt.Sprint(taskID), "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%d\n", taskID), output)
		assert.Equal(t, 0, count(taskID))
	})

	t.Run("force skips the prompt", func(t *testing.T) {
		taskID := cli.CreateTestTask(t, db, "2024-05-01", "drop", "工作", 0)
		output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{fmt.Sprint(taskID), "--force", "--json"})
		require.NoError(t, err)
		assert.Equal(t, true, cli.JSONData(t, output)["deleted"])
		assert.Equal(t, 0, count(taskID))
	})

	t.Run("confirm_delete off skips the prompt", func(t *testing.T) {
		cfg := config.Default()
		cfg.Preferences.ConfirmDelete = false
		taskID := cli.CreateTestTask(t, db, "2024-05-01", "drop", "工作", 0)

		_, err := cli.ExecuteCLICommandWithConfig(t, app, cfg, DeleteCmd(), []string{fmt.Sprint(taskID)})
		require.NoError(t, err)
		assert.Equal(t, 0, count(taskID))
	})

	t.Run("missing task with confirmation", func(t *testing.T) {
		_, err := cli.ExecuteCLICommandWithInput(t, app, nil, "y\n", DeleteCmd(), []string{"999", "--json"})
		assert.Equal(t, mydaycli.ExitNotFound, mydaycli.ExitCode(err))
	})

	t.Run("missing task with force is a no-op", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"999", "--force", "--quiet"})
		assert.NoError(t, err)
	})
}
