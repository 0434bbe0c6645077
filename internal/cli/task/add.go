package task

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/cli/handler"
	"github.com/thenoetrevino/myday/internal/models"
	taskservice "github.com/thenoetrevino/myday/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a day",
		Long: `Add a task to a calendar day.

Examples:
  # Task for today under the first tag
  myday task add --content="写周报"

  # Full example
  myday task add --date=2024-05-01 --content="体检" --tag=健康 --priority=3 \
    --description="空腹, 带身份证"

  # Description from stdin, ID captured in a script
  TASK_ID=$(echo "# Notes" | myday task add --content="Plan" --description=- --quiet)
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runAdd), func(cmd *cobra.Command) error {
			content, _ := cmd.Flags().GetString("content")
			if strings.TrimSpace(content) == "" {
				return fmt.Errorf("--content is required")
			}
			return nil
		}),
	}

	cmd.Flags().String("content", "", "Task content (required)")
	cmd.Flags().String("date", "today", "Date: YYYY-MM-DD, today, yesterday or tomorrow")
	cmd.Flags().String("tag", "", "Tag name (defaults to the first tag)")
	cmd.Flags().Int("priority", 0, "Priority from 0 (normal) to 5")
	cmd.Flags().String("description", "", "Markdown description (use - for stdin)")
	cmd.Flags().String("status", "", "Status: todo, doing, done or hold")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runAdd(ctx context.Context, args *handler.Arguments) (any, error) {
	f := args.Formatter
	svc := args.CLI.App.TaskService

	date, err := cli.ParseDate(args.GetString("date", "today"), args.CLI.App.Now())
	if err != nil {
		return nil, f.Fail(cli.ExitValidation, "INVALID_DATE", err, "")
	}

	priority, err := args.Parser().ParsePriority("priority")
	if err != nil {
		return nil, f.Fail(cli.ExitValidation, "INVALID_PRIORITY", err, "")
	}

	var status models.Status
	if args.Has("status") {
		status, err = cli.ParseStatus(args.GetString("status", ""))
		if err != nil {
			return nil, f.Fail(cli.ExitValidation, "INVALID_STATUS", err, "")
		}
	}

	tag := args.GetString("tag", "")
	if tag == "" {
		names, err := args.CLI.App.TagService.Names(ctx)
		if err != nil {
			return nil, err
		}
		if len(names) == 0 {
			return nil, f.Fail(cli.ExitUsage, "NO_TAGS", fmt.Errorf("no tags defined"),
				"Create one with 'myday tag add --name=<name> --color=#RRGGBB' or pass --tag")
		}
		tag = names[0]
	}

	description := args.GetString("description", "")
	if description == "-" {
		data, err := io.ReadAll(args.GetCmd().InOrStdin())
		if err != nil {
			return nil, f.Fail(cli.ExitError, "STDIN_READ_ERROR", err, "")
		}
		description = string(data)
	}

	task, err := svc.CreateTask(ctx, taskservice.CreateTaskRequest{
		Date:        date,
		Content:     args.GetString("content", ""),
		Status:      status,
		Tag:         tag,
		Priority:    priority,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	return taskChanged{
		Task:    task,
		message: fmt.Sprintf("Task '%s' added to %s (ID: %d)", task.Content, task.DateStr, task.ID),
	}, nil
}
