package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/cli/handler"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task between done and todo",
		Long: `Mark a task as done. Running it on a done task sets it back to todo.

Examples:
  myday task done 42
  myday task done 42 --quiet
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.SimpleCommand(handler.HandlerFunc(runDone)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runDone(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID, err := args.Parser().ParseTaskIDArg(args.Args)
	if err != nil {
		return nil, err
	}

	task, err := args.CLI.App.TaskService.ToggleDone(ctx, taskID)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Task %d marked as done", task.ID)
	if !task.IsDone() {
		message = fmt.Sprintf("Task %d reopened", task.ID)
	}
	return taskChanged{Task: task, message: message}, nil
}
