package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/cli/calendar"
	"github.com/thenoetrevino/myday/internal/cli/data"
	"github.com/thenoetrevino/myday/internal/cli/search"
	"github.com/thenoetrevino/myday/internal/cli/styles"
	"github.com/thenoetrevino/myday/internal/cli/tag"
	"github.com/thenoetrevino/myday/internal/cli/task"
	"github.com/thenoetrevino/myday/internal/config"
	"github.com/thenoetrevino/myday/internal/logging"
)

// NewRootCmd builds the myday command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "myday",
		Short: "myday - a calendar and to-do list for the terminal",
		Long: `myday keeps dated tasks with a tag, a 0-5 priority and a status, and shows
them as a month calendar with one badge per day.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				jsonOutput, _ := cmd.Flags().GetBool("json")
				formatter := &cli.OutputFormatter{JSON: jsonOutput}
				return formatter.Fail(cli.ExitError, "CONFIG_ERROR", fmt.Errorf("failed to load config: %w", err), "")
			}
			styles.Init(cfg.ColorScheme)
			cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
			return nil
		},
	}

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(tag.TagCmd())
	rootCmd.AddCommand(calendar.CalendarCmd())
	rootCmd.AddCommand(search.SearchCmd())
	rootCmd.AddCommand(data.StatsCmd())
	rootCmd.AddCommand(data.ExportCmd())
	rootCmd.AddCommand(data.ImportCmd())
	rootCmd.AddCommand(data.BackupCmd())

	return rootCmd
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	closer, err := logging.Init()
	if err != nil {
		logging.Discard()
	} else {
		defer closer.Close()
	}

	// Cancel in-flight queries on Ctrl-C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = NewRootCmd().ExecuteContext(ctx)
	var cmdErr *cli.CommandError
	if err != nil && !errors.As(err, &cmdErr) {
		// cobra errors (unknown command, bad flag) have not been reported yet
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitUsage
	}
	return cli.ExitCode(err)
}
