package task

import (
	"github.com/spf13/cobra"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(StatusCmd())
	cmd.AddCommand(PriorityCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
