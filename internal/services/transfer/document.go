package transfer

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/myday/internal/models"
)

// FormatVersion is written into every export
const FormatVersion = "1.1"

// Document is the JSON interchange format
type Document struct {
	Version string         `json:"version"`
	Tags    []models.Tag   `json:"tags"`
	Tasks   []*models.Task `json:"tasks"`
}

// importDocument mirrors Document with pointer fields so missing keys can
// be told apart from zero values
type importDocument struct {
	Tags  []json.RawMessage `json:"tags"` // decoded one by one so bad entries can be skipped
	Tasks *[]importTask     `json:"tasks"`
}

type importTag struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type importTask struct {
	DateStr     *string `json:"date_str"`
	Content     *string `json:"content"`
	Status      *string `json:"status"`
	Tag         *string `json:"tag"`
	Priority    *int    `json:"priority"`
	Description *string `json:"description"`
}

func (d importDocument) records() ([]models.Tag, []models.Task, error) {
	if d.Tasks == nil {
		return nil, nil, fmt.Errorf("%w: missing tasks", ErrInvalidDocument)
	}

	tags := make([]models.Tag, 0, len(d.Tags))
	for i, raw := range d.Tags {
		var t importTag
		if err := json.Unmarshal(raw, &t); err != nil || t.Name == nil || t.Color == nil {
			slog.Warn("skipping malformed tag in import", "index", i, "entry", string(raw))
			continue
		}
		tags = append(tags, models.Tag{Name: *t.Name, Color: *t.Color})
	}

	tasks := make([]models.Task, 0, len(*d.Tasks))
	for i, t := range *d.Tasks {
		if t.DateStr == nil || t.Content == nil || t.Status == nil || t.Tag == nil {
			return nil, nil, fmt.Errorf("%w: task %d needs date_str, content, status and tag", ErrInvalidDocument, i)
		}
		task := models.Task{
			DateStr: *t.DateStr,
			Content: *t.Content,
			Status:  models.Status(*t.Status),
			Tag:     *t.Tag,
		}
		if t.Priority != nil {
			task.Priority = *t.Priority
		}
		if t.Description != nil {
			task.Description = *t.Description
		}
		tasks = append(tasks, task)
	}

	return tags, tasks, nil
}
