package search

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/myday/internal/cli/styles"
	"github.com/thenoetrevino/myday/internal/cli/task"
	"github.com/thenoetrevino/myday/internal/models"
)

type searchResult struct {
	Tasks  []*models.Task `json:"tasks"`
	colors map[string]string
}

// GetIDs lists matching task IDs for quiet mode
func (r searchResult) GetIDs() []int {
	ids := make([]int, len(r.Tasks))
	for i, t := range r.Tasks {
		ids[i] = t.ID
	}
	return ids
}

// String groups matches under a heading per day, keeping result order
func (r searchResult) String() string {
	var b strings.Builder
	if len(r.Tasks) == 0 {
		b.WriteString(styles.SubtitleStyle.Render("No matching tasks"))
		b.WriteString("\n")
		return b.String()
	}

	current := ""
	for _, t := range r.Tasks {
		if t.DateStr != current {
			if current != "" {
				b.WriteString("\n")
			}
			current = t.DateStr
			b.WriteString(styles.TitleStyle.Render(current))
			b.WriteString("\n")
		}
		b.WriteString("  ")
		b.WriteString(task.FormatTaskLine(t, r.colors[t.Tag]))
		b.WriteString("\n")
	}
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%d found", len(r.Tasks))))
	b.WriteString("\n")
	return b.String()
}
