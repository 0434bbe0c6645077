package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/cli/handler"
	"github.com/thenoetrevino/myday/internal/models"
	taskservice "github.com/thenoetrevino/myday/internal/services/task"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one day's tasks",
		Long: `List the tasks of one day, highest priority first.

Without --tag every tag is shown. Repeat --tag to show several.

Examples:
  myday task list
  myday task list --date=2024-05-01 --tag=工作 --tag=学习
  myday task list --keyword=报告 --json
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	cmd.Flags().String("date", "today", "Date: YYYY-MM-DD, today, yesterday or tomorrow")
	cmd.Flags().StringArray("tag", nil, "Only show these tags (repeatable)")
	cmd.Flags().String("keyword", "", "Only show tasks whose content or description contains this text")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	f := args.Formatter

	date, err := cli.ParseDate(args.GetString("date", "today"), args.CLI.App.Now())
	if err != nil {
		return nil, f.Fail(cli.ExitValidation, "INVALID_DATE", err, "")
	}

	tags, err := cli.ResolveTags(ctx, args.CLI, args.GetStringSlice("tag", nil))
	if err != nil {
		return nil, err
	}

	var tasks []*models.Task
	if keyword := args.GetString("keyword", ""); keyword != "" {
		tasks, err = args.CLI.App.TaskService.Filter(ctx, taskservice.FilterRequest{
			StartDate: date,
			EndDate:   date,
			Tags:      tags,
			Keyword:   keyword,
		})
	} else {
		tasks, err = args.CLI.App.TaskService.TasksForDate(ctx, date, tags)
	}
	if err != nil {
		return nil, err
	}

	colors, err := args.CLI.App.TagService.ColorMap(ctx)
	if err != nil {
		return nil, err
	}

	return taskList{Date: date, Tasks: tasks, colors: colors}, nil
}
