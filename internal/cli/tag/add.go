package tag

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/cli/handler"
	"github.com/thenoetrevino/myday/internal/cli/styles"
	tagservice "github.com/thenoetrevino/myday/internal/services/tag"
)

// AddCmd returns the tag add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a tag",
		Long: `Add a tag with a display color. Adding a name that already exists keeps
the existing color and is not an error.

Examples:
  myday tag add --name=阅读 --color=#64D2FF
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runAdd), func(cmd *cobra.Command) error {
			for _, name := range []string{"name", "color"} {
				if !cmd.Flags().Changed(name) {
					return fmt.Errorf("--%s is required", name)
				}
			}
			return nil
		}),
	}

	cmd.Flags().String("name", "", "Tag name (required)")
	cmd.Flags().String("color", "", "Hex color #RRGGBB (required)")

	handler.AddOutputFlags(cmd)

	return cmd
}

type addResult struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Added bool   `json:"added"`
}

func (r addResult) String() string {
	chip := styles.RenderTagChip(r.Name, r.Color)
	if !r.Added {
		return styles.WarningStyle.Render("!") + " Tag " + chip + " already exists\n"
	}
	return styles.SuccessStyle.Render("✓") + " Tag " + chip + " added\n"
}

func runAdd(ctx context.Context, args *handler.Arguments) (any, error) {
	color, err := args.Parser().ParseColor("color")
	if err != nil {
		return nil, args.Formatter.Fail(cli.ExitValidation, "INVALID_COLOR", err, "")
	}

	name, err := args.Parser().ParseString("name")
	if err != nil {
		return nil, args.Formatter.Fail(cli.ExitValidation, "INVALID_NAME", err, "")
	}
	added, err := args.CLI.App.TagService.AddTag(ctx, tagservice.AddTagRequest{Name: name, Color: color})
	if err != nil {
		return nil, err
	}

	return addResult{Name: name, Color: color, Added: added}, nil
}
