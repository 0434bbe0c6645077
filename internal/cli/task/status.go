package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/cli/handler"
	"github.com/thenoetrevino/myday/internal/models"
	taskservice "github.com/thenoetrevino/myday/internal/services/task"
)

// StatusCmd returns the task status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Set a task's status",
		Long: `Set a task's status.

Status may be one of the stored labels (待完成, 进行中, 已完成, 搁置)
or an alias: todo, doing, done, hold.

Examples:
  myday task status 12 doing
  myday task status 12 搁置 --json
`,
		Args: cobra.ExactArgs(2),
		RunE: handler.SimpleCommand(handler.HandlerFunc(runStatus)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runStatus(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID, err := args.Parser().ParseTaskIDArg(args.Args)
	if err != nil {
		return nil, err
	}
	status, err := cli.ParseStatus(args.Args[1])
	if err != nil {
		return nil, args.Formatter.Fail(cli.ExitValidation, "INVALID_STATUS", err, "")
	}

	if err := args.CLI.App.TaskService.UpdateStatus(ctx, taskID, status); err != nil {
		return nil, err
	}

	return changedResult(ctx, args, taskID, fmt.Sprintf("Task %d status set to %s", taskID, status))
}

// PriorityCmd returns the task priority subcommand
func PriorityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "priority <id> <0-5>",
		Short: "Set a task's priority",
		Long: `Set a task's priority from 0 (normal) to 5. Priority 3 and above count
as high priority in statistics.

Examples:
  myday task priority 12 3
`,
		Args: cobra.ExactArgs(2),
		RunE: handler.SimpleCommand(handler.HandlerFunc(runPriority)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runPriority(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID, err := args.Parser().ParseTaskIDArg(args.Args)
	if err != nil {
		return nil, err
	}
	priority, err := strconv.Atoi(args.Args[1])
	if err != nil {
		return nil, args.Formatter.Fail(cli.ExitUsage, "INVALID_PRIORITY",
			fmt.Errorf("priority must be a number, got: %s", args.Args[1]), "")
	}

	if err := args.CLI.App.TaskService.UpdatePriority(ctx, taskID, priority); err != nil {
		return nil, err
	}

	return changedResult(ctx, args, taskID, fmt.Sprintf("Task %d priority set to %d", taskID, priority))
}

// changedResult re-reads a task after an update. Updates to unknown IDs
// change nothing, which is reported as a warning rather than an error.
func changedResult(ctx context.Context, args *handler.Arguments, taskID int, message string) (any, error) {
	task, err := args.CLI.App.TaskService.GetTask(ctx, taskID)
	if errors.Is(err, taskservice.ErrTaskNotFound) {
		slog.Warn("update matched no task", "id", taskID)
		return taskChanged{
			Task:    &models.Task{ID: taskID},
			message: fmt.Sprintf("Task %d does not exist, nothing changed", taskID),
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return taskChanged{Task: task, message: message}, nil
}
