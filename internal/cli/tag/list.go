package tag

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/myday/internal/cli/handler"
	"github.com/thenoetrevino/myday/internal/cli/styles"
	"github.com/thenoetrevino/myday/internal/models"
)

// ListCmd returns the tag list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags in creation order",
		Args:  cobra.NoArgs,
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

type tagList []*models.Tag

func (l tagList) String() string {
	if len(l) == 0 {
		return styles.SubtitleStyle.Render("No tags") + "\n"
	}
	var b strings.Builder
	for _, t := range l {
		b.WriteString(styles.RenderTagChip(t.Name, t.Color))
		b.WriteString(" ")
		b.WriteString(styles.SubtitleStyle.Render(t.Color))
		b.WriteString("\n")
	}
	return b.String()
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	tags, err := args.CLI.App.TagService.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	return tagList(tags), nil
}
