package data

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/cli/handler"
)

// BackupCmd returns the backup command
func BackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Copy the database into a timestamped backup file",
		Long: `Copy the database to DIR/myday_backup_YYYYMMDD_HHMMSS.db. The copy is taken
online and is consistent even while other commands run.

Without --dir the backup_dir setting is used.

Examples:
  myday backup
  myday backup --dir=/mnt/usb --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runBackup)),
	}

	cmd.Flags().String("dir", "", "Backup directory (defaults to backup_dir)")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runBackup(ctx context.Context, args *handler.Arguments) (any, error) {
	dir := args.GetString("dir", args.CLI.Config.BackupDir)

	path, err := args.CLI.App.TransferService.Backup(ctx, dir, args.CLI.App.Now())
	if err != nil {
		return nil, err
	}

	return fileResult{Path: path, message: "Backed up to " + path}, nil
}
