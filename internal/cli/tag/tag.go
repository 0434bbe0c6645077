package tag

import (
	"github.com/spf13/cobra"
)

// TagCmd returns the tag parent command
func TagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AddCmd())

	return cmd
}
