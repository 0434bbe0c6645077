package handler

import (
	"fmt"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/models"
)

// ============================================================================
// Test Helpers
// ============================================================================

// createTestCommand creates a mock cobra.Command with specified flags
func createTestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use: "test",
		Run: func(cmd *cobra.Command, args []string) {},
	}
	return cmd
}

// createTestParser creates a FlagParser with a test command and formatter
func createTestParser(cmd *cobra.Command) *FlagParser {
	formatter := &cli.OutputFormatter{JSON: true, Quiet: false}
	return NewFlagParser(cmd, formatter)
}

// ============================================================================
// ParseTaskIDArg Tests
// ============================================================================

func TestParseTaskIDArg(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		want     int
		wantCode int
	}{
		{name: "valid task ID", args: []string{"42"}, want: 42},
		{name: "zero task ID", args: []string{"0"}, wantCode: cli.ExitUsage},
		{name: "not a number", args: []string{"abc"}, wantCode: cli.ExitUsage},
		{name: "missing", args: nil, wantCode: cli.ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := createTestParser(createTestCommand())

			// Silence the JSON error written to stdout
			devNull, err := os.Open(os.DevNull)
			require.NoError(t, err)
			oldStdout := os.Stdout
			os.Stdout = devNull
			got, err := parser.ParseTaskIDArg(tt.args)
			os.Stdout = oldStdout
			_ = devNull.Close()

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, cli.ExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ============================================================================
// ParseString Tests
// ============================================================================

func TestParseString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flagValue string
		want      string
		wantErr   bool
	}{
		{name: "plain value", flagValue: "工作", want: "工作"},
		{name: "trims whitespace", flagValue: "  x  ", want: "x"},
		{name: "empty", flagValue: "", wantErr: true},
		{name: "only spaces", flagValue: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cmd := createTestCommand()
			cmd.Flags().String("name", "", "")
			require.NoError(t, cmd.Flags().Set("name", tt.flagValue))

			got, err := createTestParser(cmd).ParseString("name")
			if tt.wantErr {
				assert.ErrorContains(t, err, "name is required")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ============================================================================
// ParsePriority / ParseColor / ParseStatus Tests
// ============================================================================

func TestParsePriority(t *testing.T) {
	t.Parallel()

	for p := -1; p <= 6; p++ {
		t.Run(fmt.Sprintf("priority %d", p), func(t *testing.T) {
			t.Parallel()
			cmd := createTestCommand()
			cmd.Flags().Int("priority", 0, "")
			require.NoError(t, cmd.Flags().Set("priority", fmt.Sprint(p)))

			got, err := createTestParser(cmd).ParsePriority("priority")
			if p < 0 || p > 5 {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, p, got)
		})
	}
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	cmd.Flags().String("color", "", "")
	parser := createTestParser(cmd)

	require.NoError(t, cmd.Flags().Set("color", "#30D158"))
	color, err := parser.ParseColor("color")
	require.NoError(t, err)
	assert.Equal(t, "#30D158", color)

	require.NoError(t, cmd.Flags().Set("color", "green"))
	_, err = parser.ParseColor("color")
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	cmd.Flags().String("status", "", "")
	parser := createTestParser(cmd)

	require.NoError(t, cmd.Flags().Set("status", "doing"))
	status, err := parser.ParseStatus("status")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, status)

	require.NoError(t, cmd.Flags().Set("status", "later"))
	_, err = parser.ParseStatus("status")
	assert.Error(t, err)
}

// ============================================================================
// OutputFormats Tests
// ============================================================================

func TestOutputFormats(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	AddOutputFlags(cmd)
	require.NoError(t, cmd.Flags().Set("json", "true"))

	jsonOutput, quiet, err := createTestParser(cmd).OutputFormats()
	require.NoError(t, err)
	assert.True(t, jsonOutput)
	assert.False(t, quiet)

	_, _, err = createTestParser(createTestCommand()).OutputFormats()
	assert.Error(t, err, "flags not registered")
}
