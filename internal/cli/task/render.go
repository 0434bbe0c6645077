package task

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/myday/internal/cli"
	"github.com/thenoetrevino/myday/internal/cli/styles"
	"github.com/thenoetrevino/myday/internal/models"
)

// taskList is the result of list-style commands
type taskList struct {
	Date   string            `json:"date,omitempty"`
	Tasks  []*models.Task    `json:"tasks"`
	colors map[string]string // tag -> color, for human output
}

// GetIDs lists task IDs for quiet mode
func (l taskList) GetIDs() []int {
	ids := make([]int, len(l.Tasks))
	for i, t := range l.Tasks {
		ids[i] = t.ID
	}
	return ids
}

func (l taskList) String() string {
	var b strings.Builder
	if l.Date != "" {
		b.WriteString(styles.TitleStyle.Render(l.Date))
		b.WriteString("\n")
	}
	if len(l.Tasks) == 0 {
		b.WriteString(styles.SubtitleStyle.Render("No tasks"))
		b.WriteString("\n")
		return b.String()
	}
	for _, t := range l.Tasks {
		b.WriteString(FormatTaskLine(t, l.colors[t.Tag]))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatTaskLine renders one task as
// "#id ☐ content [tag] ★★ (status)"
func FormatTaskLine(t *models.Task, tagColor string) string {
	box := "☐"
	content := styles.ValueStyle.Render(t.Content)
	if t.IsDone() {
		box = "☑"
		content = styles.DoneStyle.Render(t.Content)
	}

	parts := []string{
		styles.SubtitleStyle.Render(fmt.Sprintf("#%d", t.ID)),
		box,
		content,
		styles.RenderTagChip(t.Tag, tagColor),
	}
	if stars := cli.Stars(t.Priority); stars != "" {
		parts = append(parts, styles.StarStyle.Render(stars))
	}
	if !t.IsDone() && t.Status != models.StatusTodo {
		parts = append(parts, styles.SubtitleStyle.Render("("+t.Status.String()+")"))
	}
	return strings.Join(parts, " ")
}

// taskDetail is the result of task show
type taskDetail struct {
	*models.Task
	TagColor string `json:"tag_color"`
}

func (d taskDetail) String() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(d.Content))
	b.WriteString("\n\n")

	field := func(label, value string) {
		b.WriteString(styles.LabelStyle.Render(label + ":"))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	field("ID", styles.ValueStyle.Render(fmt.Sprintf("%d", d.ID)))
	field("Date", styles.ValueStyle.Render(d.DateStr))
	field("Tag", styles.RenderTagChip(d.Tag, d.TagColor))
	field("Status", styles.ValueStyle.Render(d.Status.String()))
	priority := fmt.Sprintf("%d", d.Priority)
	if stars := cli.Stars(d.Priority); stars != "" {
		priority += " " + styles.StarStyle.Render(stars)
	}
	field("Priority", priority)

	b.WriteString(styles.SectionStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(styles.RenderDescription(d.Description, styles.CardWidth-6))

	return styles.RenderCard(b.String()) + "\n"
}

// taskChanged is the result of commands that modify one task
type taskChanged struct {
	*models.Task
	message string
}

func (c taskChanged) String() string {
	return styles.SuccessStyle.Render("✓") + " " + c.message + "\n"
}
