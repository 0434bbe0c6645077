package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/cli/handler"
	calendarservice "github.com/thenoetrevino/myday/internal/services/calendar"
)

// CalendarCmd returns the calendar command
func CalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month with one badge per day",
		Long: `Show a month grid. Each day with tasks under the active tags shows the
color of its most important task's tag and that task's priority as stars.

Examples:
  myday calendar
  myday calendar --year=2024 --month=10 --tag=工作
  myday calendar --week-start=sunday --json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runCalendar), func(cmd *cobra.Command) error {
			ws, _ := cmd.Flags().GetString("week-start")
			switch strings.ToLower(ws) {
			case "", "monday", "sunday":
				return nil
			default:
				return fmt.Errorf("--week-start must be monday or sunday, got: %s", ws)
			}
		}),
	}

	cmd.Flags().Int("year", 0, "Year (defaults to the current year)")
	cmd.Flags().Int("month", 0, "Month 1-12 (defaults to the current month)")
	cmd.Flags().StringArray("tag", nil, "Only consider these tags (repeatable)")
	cmd.Flags().String("week-start", "", "monday or sunday (defaults to preferences.week_start)")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runCalendar(ctx context.Context, args *handler.Arguments) (any, error) {
	now := args.CLI.App.Now()

	tags, err := cli.ResolveTags(ctx, args.CLI, args.GetStringSlice("tag", nil))
	if err != nil {
		return nil, err
	}

	weekStart := args.CLI.Config.Preferences.WeekStartDay()
	if strings.EqualFold(args.GetString("week-start", ""), "sunday") {
		weekStart = time.Sunday
	} else if strings.EqualFold(args.GetString("week-start", ""), "monday") {
		weekStart = time.Monday
	}

	view, err := args.CLI.App.CalendarService.Month(ctx, calendarservice.MonthRequest{
		Year:      args.GetInt("year", now.Year()),
		Month:     args.GetInt("month", int(now.Month())),
		Tags:      tags,
		WeekStart: weekStart,
		Today:     now,
	})
	if err != nil {
		return nil, err
	}

	return monthResult{MonthView: view}, nil
}
