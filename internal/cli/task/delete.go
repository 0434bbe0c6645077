package task

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/cli/handler"
	"github.com/thenoetrevino/myday/internal/models"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long: `Delete a task. When preferences.confirm_delete is on (the default) the
task is shown and confirmation is asked for; --force skips the prompt.

Examples:
  myday task delete 42
  myday task delete 42 --force --quiet
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.SimpleCommand(handler.HandlerFunc(runDelete)),
	}

	cmd.Flags().Bool("force", false, "Skip the confirmation prompt")
	handler.AddOutputFlags(cmd)

	return cmd
}

// deleteResult reports what delete did
type deleteResult struct {
	TaskID  int  `json:"task_id"`
	Deleted bool `json:"deleted"`
}

func (r deleteResult) GetID() int { return r.TaskID }

func (r deleteResult) String() string {
	return fmt.Sprintf("✓ Task %d deleted\n", r.TaskID)
}

// deleteCancelled is returned when the prompt is declined. It has no
// GetID so quiet mode prints nothing.
type deleteCancelled struct {
	TaskID  int  `json:"task_id"`
	Deleted bool `json:"deleted"`
}

func (deleteCancelled) String() string {
	return "Deletion cancelled\n"
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID, err := args.Parser().ParseTaskIDArg(args.Args)
	if err != nil {
		return nil, err
	}

	svc := args.CLI.App.TaskService
	if args.CLI.Config.Preferences.ConfirmDelete && !args.GetBool("force") {
		task, err := svc.GetTask(ctx, taskID)
		if err != nil {
			return nil, err
		}
		if !confirm(args.GetCmd(), task) {
			return deleteCancelled{TaskID: taskID}, nil
		}
	}

	if err := svc.DeleteTask(ctx, taskID); err != nil {
		return nil, err
	}

	return deleteResult{TaskID: taskID, Deleted: true}, nil
}

// confirm asks on stderr and reads the answer from the command's input
func confirm(cmd *cobra.Command, task *models.Task) bool {
	fmt.Fprintf(os.Stderr, "Delete task #%d '%s' on %s? [y/N] ", task.ID, task.Content, task.DateStr)

	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
