package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/cli/handler"
	"github.com/thenoetrevino/myday/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Long:  "Display all details of a task, rendering its Markdown description.",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runShow)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID, err := args.Parser().ParseTaskIDArg(args.Args)
	if err != nil {
		return nil, err
	}

	task, err := args.CLI.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	colors, err := args.CLI.App.TagService.ColorMap(ctx)
	if err != nil {
		return nil, err
	}
	color, ok := colors[task.Tag]
	if !ok {
		color = models.FallbackTagColor
	}

	return taskDetail{Task: task, TagColor: color}, nil
}
