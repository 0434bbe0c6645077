// Package data holds the whole-database commands: statistics, export,
// import and backup
package data

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/cli/handler"
	"github.com/thenoetrevino/myday/internal/cli/styles"
	"github.com/thenoetrevino/myday/internal/models"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task counters and the completion rate",
		Args:  cobra.NoArgs,
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runStats)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runStats(ctx context.Context, args *handler.Arguments) (any, error) {
	stats, err := args.CLI.App.TransferService.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return statsResult{Stats: stats}, nil
}

type statsResult struct {
	models.Stats
}

func (s statsResult) String() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Statistics"))
	b.WriteString("\n\n")

	row := func(label string, value int) {
		b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%-15s", label+":")))
		b.WriteString(styles.ValueStyle.Render(fmt.Sprintf("%d", value)))
		b.WriteString("\n")
	}
	row("Total", s.Total)
	row("Done", s.Done)
	row("Todo", s.Todo)
	row("High priority", s.HighPriority)
	b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%-15s", "Completion:")))
	b.WriteString(styles.SuccessStyle.Render(fmt.Sprintf("%d%%", s.CompletionRate)))

	return styles.RenderCard(b.String()) + "\n"
}
