package data

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/cli/handler"
	"github.com/thenoetrevino/myday/internal/cli/styles"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every tag and task as JSON",
		Long: `Export every tag and task as a JSON document that 'myday import' accepts.

Without --file the document is written to stdout.

Examples:
  myday export --file=myday.json
  myday export > myday.json
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runExport)),
	}

	cmd.Flags().String("file", "", "Output file (defaults to stdout)")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runExport(ctx context.Context, args *handler.Arguments) (any, error) {
	path := args.GetString("file", "")
	if path == "" || path == "-" {
		return nil, args.CLI.App.TransferService.Export(ctx, args.GetCmd().OutOrStdout())
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, args.Formatter.Fail(cli.ExitError, "FILE_ERROR", fmt.Errorf("failed to create %s: %w", path, err), "")
	}

	if err := args.CLI.App.TransferService.Export(ctx, file); err != nil {
		_ = file.Close()
		return nil, err
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return fileResult{Path: path, message: "Exported to " + path}, nil
}

// fileResult reports a file the command wrote
type fileResult struct {
	Path    string `json:"path"`
	message string
}

// GetPath prints the path in quiet mode
func (r fileResult) GetPath() string {
	return r.Path
}

func (r fileResult) String() string {
	return styles.SuccessStyle.Render("✓") + " " + r.message + "\n"
}
