package database

import (
	"context"

	"github.com/thenoetrevino/myday/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTask(ctx context.Context, id int) (*models.Task, error)
	TasksForDate(ctx context.Context, dateStr string, activeTags []string) ([]*models.Task, error)
	SearchTasks(ctx context.Context, keyword string) ([]*models.Task, error)
	FilterTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error)
	AllTasks(ctx context.Context) ([]*models.Task, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	AddTask(ctx context.Context, dateStr, content string, status models.Status, tag string, priority int, description string) (*models.Task, error)
	UpdateTaskStatus(ctx context.Context, id int, status models.Status) error
	UpdateTaskPriority(ctx context.Context, id, priority int) error
	UpdateTaskInfo(ctx context.Context, id int, content, tag string, priority int, description string) error
	DeleteTask(ctx context.Context, id int) error
}

// CalendarReader defines the aggregation used to paint a month grid.
type CalendarReader interface {
	MonthSummary(ctx context.Context, year, month int, activeTags []string) (models.MonthSummary, error)
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
	CalendarReader
}
