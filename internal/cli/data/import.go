package data

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/cli/handler"
	"github.com/thenoetrevino/myday/internal/cli/styles"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import tags and tasks from an exported JSON document",
		Long: `Import a document written by 'myday export'. Tags that already exist are
kept as they are. Every task is added as a new task, so importing the same
file twice duplicates its tasks.

Use --file=- to read from stdin.

Examples:
  myday import --file=myday.json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runImport), func(cmd *cobra.Command) error {
			if !cmd.Flags().Changed("file") {
				return fmt.Errorf("--file is required")
			}
			return nil
		}),
	}

	cmd.Flags().String("file", "", "Document to import, - for stdin (required)")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runImport(ctx context.Context, args *handler.Arguments) (any, error) {
	path := args.GetString("file", "")

	var r io.Reader
	if path == "-" {
		r = args.GetCmd().InOrStdin()
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, args.Formatter.Fail(cli.ExitError, "FILE_ERROR", fmt.Errorf("failed to open %s: %w", path, err), "")
		}
		defer file.Close()
		r = file
	}

	count, err := args.CLI.App.TransferService.Import(ctx, r)
	if err != nil {
		return nil, err
	}

	return importResult{Imported: count}, nil
}

type importResult struct {
	Imported int `json:"imported"`
}

func (r importResult) String() string {
	return styles.SuccessStyle.Render("✓") + fmt.Sprintf(" Imported %d tasks\n", r.Imported)
}
