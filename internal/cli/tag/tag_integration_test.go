package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mydaycli "github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/testutil"
	"github.com/thenoetrevino/myday/internal/testutil/cli"
)

func TestListTags(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
	require.NoError(t, err)

	tags := cli.JSONList(t, output)
	require.Len(t, tags, 5)
	first := tags[0].(map[string]any)
	assert.Equal(t, "工作", first["name"])
	assert.Equal(t, "#5E5CE6", first["color"])

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{})
	require.NoError(t, err)
	assert.Contains(t, output, "[其他]")
	assert.Contains(t, output, "#BF5AF2")
}

func TestAddTag(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	t.Run("new tag", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--name", "阅读", "--color", "#64D2FF", "--json"})
		require.NoError(t, err)
		assert.Equal(t, true, cli.JSONData(t, output)["added"])

		var color string
		require.NoError(t, db.QueryRow("SELECT color FROM tags WHERE name = ?", "阅读").Scan(&color))
		assert.Equal(t, "#64D2FF", color)
	})

	t.Run("duplicate keeps the color", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--name", "阅读", "--color", "#000000"})
		require.NoError(t, err)
		assert.Contains(t, output, "already exists")

		var color string
		require.NoError(t, db.QueryRow("SELECT color FROM tags WHERE name = ?", "阅读").Scan(&color))
		assert.Equal(t, "#64D2FF", color)
	})

	t.Run("invalid color", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--name", "x", "--color", "blue", "--json"})
		assert.Equal(t, mydaycli.ExitValidation, mydaycli.ExitCode(err))
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--color", "#FFFFFF", "--json"})
		assert.Equal(t, mydaycli.ExitUsage, mydaycli.ExitCode(err))
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--name", "", "--color", "#FFFFFF", "--json"})
		assert.Equal(t, mydaycli.ExitValidation, mydaycli.ExitCode(err))
	})

	t.Run("name is trimmed", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--name", "  旅行 ", "--color", "#30D158", "--json"})
		require.NoError(t, err)
		assert.Equal(t, "旅行", cli.JSONData(t, output)["name"])
	})

	t.Run("human errors go to stderr", func(t *testing.T) {
		var (
			output string
			err    error
		)
		stderr := testutil.CaptureStderr(t, func() {
			output, err = cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--name", "x", "--color", "blue"})
		})
		assert.Equal(t, mydaycli.ExitValidation, mydaycli.ExitCode(err))
		assert.Empty(t, output)
		assert.Contains(t, stderr, "Error:")
		assert.Contains(t, stderr, "blue")
	})
}
