package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/cli/handler"
	taskservice "github.com/thenoetrevino/myday/internal/services/task"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's content, tag, priority or description",
		Long: `Edit a task. Only the flags given are changed. The date and status are
kept; use 'myday task status' to change the status.

Examples:
  myday task edit 12 --content="写月报" --priority=2
  cat notes.md | myday task edit 12 --description=-
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(handler.HandlerFunc(runEdit), func(cmd *cobra.Command) error {
			for _, name := range []string{"content", "tag", "priority", "description"} {
				if cmd.Flags().Changed(name) {
					return nil
				}
			}
			return fmt.Errorf("nothing to change: pass --content, --tag, --priority or --description")
		}),
	}

	cmd.Flags().String("content", "", "New content")
	cmd.Flags().String("tag", "", "New tag")
	cmd.Flags().Int("priority", 0, "New priority from 0 to 5")
	cmd.Flags().String("description", "", "New Markdown description (use - for stdin)")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runEdit(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID, err := args.Parser().ParseTaskIDArg(args.Args)
	if err != nil {
		return nil, err
	}

	svc := args.CLI.App.TaskService
	task, err := svc.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	req := taskservice.UpdateTaskInfoRequest{
		TaskID:      task.ID,
		Content:     args.GetString("content", task.Content),
		Tag:         args.GetString("tag", task.Tag),
		Priority:    args.GetInt("priority", task.Priority),
		Description: args.GetString("description", task.Description),
	}
	if req.Description == "-" {
		data, err := io.ReadAll(args.GetCmd().InOrStdin())
		if err != nil {
			return nil, args.Formatter.Fail(cli.ExitError, "STDIN_READ_ERROR", err, "")
		}
		req.Description = string(data)
	}

	if err := svc.UpdateInfo(ctx, req); err != nil {
		return nil, err
	}

	return changedResult(ctx, args, taskID, fmt.Sprintf("Task %d updated", taskID))
}
