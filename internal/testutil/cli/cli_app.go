package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/app"
	mydaycli "github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/config"
	"github.com/thenoetrevino/myday/internal/testutil"
)

// Today is the date FixedClock reports
const Today = "2024-05-15"

// FixedClock pins "today" so tests don't depend on the wall clock
func FixedClock() time.Time {
	return time.Date(2024, 5, 15, 9, 30, 0, 0, time.Local)
}

// ExecuteCLICommand executes a CLI command with a test app instance
// This properly injects the app context so commands can access the test database
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, nil, "", cmd, args)
}

// ExecuteCLICommandWithConfig runs cmd with a specific config
func ExecuteCLICommandWithConfig(t *testing.T, testApp *app.App, cfg *config.Config, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, cfg, "", cmd, args)
}

// ExecuteCLICommandWithInput runs cmd with stdin set to input, used to
// answer confirmation prompts
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cfg *config.Config, input string, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctx := mydaycli.WithApp(context.Background(), testApp)
	if cfg != nil {
		ctx = mydaycli.WithConfig(ctx, cfg)
	}

	cmd.SetArgs(args)
	var in io.Reader = strings.NewReader(input)
	cmd.SetIn(in)
	cmd.SetErr(io.Discard)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})

	return output, executeErr
}
