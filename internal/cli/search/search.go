package search

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/cli/handler"
	"github.com/thenoetrevino/myday/internal/models"
	taskservice "github.com/thenoetrevino/myday/internal/services/task"
)

// SearchCmd returns the search command
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [KEYWORD]",
		Short: "Find tasks by text, or by date range with filters",
		Long: `Find tasks whose content or description contains KEYWORD. Matching is
case-sensitive and the most recent day comes first.

With --from and --to the search runs over that date range instead, limited
to 365 days, and can be narrowed by tag, minimum priority and keyword.

Examples:
  myday search 报告
  myday search --from=2024-05-01 --to=2024-05-31 --tag=工作 --min-priority=3
  myday search --from=2024-01-01 --to=2024-12-31 --keyword=牛奶 --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(handler.HandlerFunc(runSearch), parseSearchFlags),
	}

	cmd.Flags().String("from", "", "Range start (YYYY-MM-DD, today, yesterday, tomorrow)")
	cmd.Flags().String("to", "", "Range end, inclusive")
	cmd.Flags().StringArray("tag", nil, "Only these tags (repeatable, range search only)")
	cmd.Flags().Int("min-priority", 0, "Minimum priority 0-5 (range search only)")
	cmd.Flags().String("keyword", "", "Substring to match (range search only)")

	handler.AddOutputFlags(cmd)

	return cmd
}

func parseSearchFlags(cmd *cobra.Command) error {
	from := cmd.Flags().Changed("from")
	to := cmd.Flags().Changed("to")
	if from != to {
		return errors.New("--from and --to must be given together")
	}
	if !from && len(cmd.Flags().Args()) == 0 {
		return errors.New("a keyword or a --from/--to range is required")
	}
	if !from {
		for _, name := range []string{"tag", "min-priority", "keyword"} {
			if cmd.Flags().Changed(name) {
				return errors.New("--" + name + " requires --from and --to")
			}
		}
	}
	return nil
}

func runSearch(ctx context.Context, args *handler.Arguments) (any, error) {
	if args.Has("from") {
		return runRange(ctx, args)
	}

	keyword := args.Args[0]
	if strings.TrimSpace(keyword) == "" {
		return nil, args.Formatter.Fail(cli.ExitUsage, "EMPTY_KEYWORD", errors.New("keyword cannot be empty"), "")
	}

	tasks, err := args.CLI.App.TaskService.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return newResult(ctx, args, tasks)
}

func runRange(ctx context.Context, args *handler.Arguments) (any, error) {
	f := args.Formatter
	now := args.CLI.App.Now()

	from, err := cli.ParseDate(args.GetString("from", ""), now)
	if err != nil {
		return nil, f.Fail(cli.ExitValidation, "INVALID_DATE", err, "")
	}
	to, err := cli.ParseDate(args.GetString("to", ""), now)
	if err != nil {
		return nil, f.Fail(cli.ExitValidation, "INVALID_DATE", err, "")
	}

	tags, err := cli.ResolveTags(ctx, args.CLI, args.GetStringSlice("tag", nil))
	if err != nil {
		return nil, err
	}

	req := taskservice.FilterRequest{
		StartDate: from,
		EndDate:   to,
		Tags:      tags,
		Keyword:   args.GetString("keyword", ""),
	}
	if args.Has("min-priority") {
		p := args.GetInt("min-priority", 0)
		req.MinPriority = &p
	}
	// A positional keyword works as --keyword
	if req.Keyword == "" && len(args.Args) > 0 {
		req.Keyword = args.Args[0]
	}

	tasks, err := args.CLI.App.TaskService.Filter(ctx, req)
	if err != nil {
		return nil, err
	}
	return newResult(ctx, args, tasks)
}

func newResult(ctx context.Context, args *handler.Arguments, tasks []*models.Task) (any, error) {
	colors, err := args.CLI.App.TagService.ColorMap(ctx)
	if err != nil {
		return nil, err
	}
	return searchResult{Tasks: tasks, colors: colors}, nil
}
