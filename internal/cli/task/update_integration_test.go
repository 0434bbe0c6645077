package task

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mydaycli "github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/models"
	"github.com/thenoetrevino/myday/internal/testutil/cli"
)

func TestStatusCmd(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	taskID := cli.CreateTestTask(t, db, "2024-05-01", "x", "工作", 0)

	t.Run("alias", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, StatusCmd(), []string{fmt.Sprint(taskID), "hold", "--json"})
		require.NoError(t, err)
		assert.Equal(t, string(models.StatusOnHold), cli.JSONData(t, output)["status"])
	})

	t.Run("stored label", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, StatusCmd(), []string{fmt.Sprint(taskID), "进行中"})
		require.NoError(t, err)
		assert.Contains(t, output, "status set to 进行中")
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, StatusCmd(), []string{fmt.Sprint(taskID), "soon", "--json"})
		assert.Equal(t, mydaycli.ExitValidation, mydaycli.ExitCode(err))
	})

	t.Run("unknown task is a no-op", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, StatusCmd(), []string{"999", "done"})
		require.NoError(t, err)
		assert.Contains(t, output, "does not exist")
	})
}

func TestPriorityCmd(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	taskID := cli.CreateTestTask(t, db, "2024-05-01", "x", "工作", 0)

	output, err := cli.ExecuteCLICommand(t, app, PriorityCmd(), []string{fmt.Sprint(taskID), "5", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n", taskID), output)

	var priority int
	require.NoError(t, db.QueryRow("SELECT priority FROM tasks WHERE id = ?", taskID).Scan(&priority))
	assert.Equal(t, 5, priority)

	_, err = cli.ExecuteCLICommand(t, app, PriorityCmd(), []string{fmt.Sprint(taskID), "high", "--json"})
	assert.Equal(t, mydaycli.ExitUsage, mydaycli.ExitCode(err))

	_, err = cli.ExecuteCLICommand(t, app, PriorityCmd(), []string{fmt.Sprint(taskID), "7", "--json"})
	assert.Equal(t, mydaycli.ExitValidation, mydaycli.ExitCode(err))
}

func TestEditCmd(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	taskID := cli.CreateTestTask(t, db, "2024-05-01", "old", "工作", 1)
	cli.SetTaskStatus(t, db, taskID, models.StatusInProgress)

	t.Run("only given fields change", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, EditCmd(), []string{
			fmt.Sprint(taskID), "--content", "new", "--priority", "4", "--json",
		})
		require.NoError(t, err)

		data := cli.JSONData(t, output)
		assert.Equal(t, "new", data["content"])
		assert.Equal(t, float64(4), data["priority"])
		assert.Equal(t, "工作", data["tag"])
		assert.Equal(t, "2024-05-01", data["date_str"])
		assert.Equal(t, string(models.StatusInProgress), data["status"])
	})

	t.Run("description from stdin", func(t *testing.T) {
		_, err := cli.ExecuteCLICommandWithInput(t, app, nil, "stdin notes", EditCmd(), []string{
			fmt.Sprint(taskID), "--description", "-", "--quiet",
		})
		require.NoError(t, err)

		var description string
		require.NoError(t, db.QueryRow("SELECT description FROM tasks WHERE id = ?", taskID).Scan(&description))
		assert.Equal(t, "stdin notes", description)
	})

	t.Run("nothing to change", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, EditCmd(), []string{fmt.Sprint(taskID), "--json"})
		assert.Equal(t, mydaycli.ExitUsage, mydaycli.ExitCode(err))
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, EditCmd(), []string{fmt.Sprint(taskID), "--content", "", "--json"})
		assert.Equal(t, mydaycli.ExitValidation, mydaycli.ExitCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, EditCmd(), []string{"999", "--content", "x", "--json"})
		assert.Equal(t, mydaycli.ExitNotFound, mydaycli.ExitCode(err))
	})
}

func TestDoneCmd(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	taskID := cli.CreateTestTask(t, db, "2024-05-01", "x", "工作", 0)

	output, err := cli.ExecuteCLICommand(t, app, DoneCmd(), []string{fmt.Sprint(taskID)})
	require.NoError(t, err)
	assert.Contains(t, output, fmt.Sprintf("Task %d marked as done", taskID))

	output, err = cli.ExecuteCLICommand(t, app, DoneCmd(), []string{fmt.Sprint(taskID), "--json"})
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusTodo), cli.JSONData(t, output)["status"])

	_, err = cli.ExecuteCLICommand(t, app, DoneCmd(), []string{"999", "--json"})
	assert.Equal(t, mydaycli.ExitNotFound, mydaycli.ExitCode(err))
}
