package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mydaycli "github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/testutil/cli"
)

func taskIDs(t *testing.T, output string) []int {
	t.Helper()
	tasks := cli.JSONData(t, output)["tasks"].([]any)
	ids := make([]int, len(tasks))
	for i, task := range tasks {
		ids[i] = int(task.(map[string]any)["id"].(float64))
	}
	return ids
}

func TestSearchCmd_Keyword(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	older := cli.CreateTestTask(t, db, "2024-05-01", "buy milk", "生活", 1)
	newer := cli.CreateTestTask(t, db, "2024-05-10", "milk run", "生活", 0)
	tea := cli.CreateTestTask(t, db, "2024-05-10", "Milk tea", "生活", 0)

	t.Run("case-sensitive, most recent first", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, SearchCmd(), []string{"milk", "--json"})
		require.NoError(t, err)
		assert.Equal(t, []int{newer, older}, taskIDs(t, output))
	})

	t.Run("human output groups by day", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, SearchCmd(), []string{"milk"})
		require.NoError(t, err)
		assert.Contains(t, output, "2024-05-10")
		assert.Contains(t, output, "2024-05-01")
		assert.Contains(t, output, "2 found")
	})

	t.Run("no match", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, SearchCmd(), []string{"coffee"})
		require.NoError(t, err)
		assert.Contains(t, output, "No matching tasks")
	})

	t.Run("quiet prints ids", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, SearchCmd(), []string{"Milk", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%d\n", tea), output)
	})
}

func TestSearchCmd_Range(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	low := cli.CreateTestTask(t, db, "2024-05-01", "weekly report", "工作", 1)
	high := cli.CreateTestTask(t, db, "2024-05-01", "quarterly report", "工作", 4)
	life := cli.CreateTestTask(t, db, "2024-05-02", "report to landlord", "生活", 3)
	cli.CreateTestTask(t, db, "2024-06-01", "june report", "工作", 5)

	t.Run("date order then priority", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, SearchCmd(),
			[]string{"--from", "2024-05-01", "--to", "2024-05-31", "--json"})
		require.NoError(t, err)
		assert.Equal(t, []int{high, low, life}, taskIDs(t, output))
	})

	t.Run("tag and minimum priority", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, SearchCmd(),
			[]string{"--from", "2024-05-01", "--to", "2024-05-31", "--tag", "工作", "--min-priority", "2", "--json"})
		require.NoError(t, err)
		assert.Equal(t, []int{high}, taskIDs(t, output))
	})

	t.Run("positional keyword", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, SearchCmd(),
			[]string{"landlord", "--from", "2024-05-01", "--to", "2024-05-31", "--json"})
		require.NoError(t, err)
		assert.Equal(t, []int{life}, taskIDs(t, output))
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, SearchCmd(),
			[]string{"--from", "2024-05-31", "--to", "2024-05-01", "--json"})
		assert.Equal(t, mydaycli.ExitValidation, mydaycli.ExitCode(err))
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, SearchCmd(),
			[]string{"--from", "05/01", "--to", "2024-05-31", "--json"})
		assert.Equal(t, mydaycli.ExitValidation, mydaycli.ExitCode(err))
	})
}

func TestSearchCmd_Usage(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	tests := []struct {
		name string
		args []string
	}{
		{"nothing to search", []string{"--json"}},
		{"from without to", []string{"--from", "2024-05-01", "--json"}},
		{"filter flag without range", []string{"milk", "--tag", "工作", "--json"}},
		{"blank keyword", []string{"  ", "--json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cli.ExecuteCLICommand(t, app, SearchCmd(), tt.args)
			assert.Equal(t, mydaycli.ExitUsage, mydaycli.ExitCode(err))
		})
	}
}
