package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/myday/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TaskRepo
	*TagRepo
	*DataRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		TaskRepo: &TaskRepo{db: db},
		TagRepo:  &TagRepo{db: db},
		DataRepo: &DataRepo{db: db},
	}
}

// Wrapper methods for TagRepo
func (r *Repository) ListTags(ctx context.Context) ([]*models.Tag, error) {
	return r.TagRepo.List(ctx)
}

func (r *Repository) AddTag(ctx context.Context, name, color string) (bool, error) {
	return r.TagRepo.Add(ctx, name, color)
}

// Wrapper methods for TaskRepo
func (r *Repository) AddTask(ctx context.Context, dateStr, content string, status models.Status, tag string, priority int, description string) (*models.Task, error) {
	return r.TaskRepo.Create(ctx, dateStr, content, status, tag, priority, description)
}

func (r *Repository) GetTask(ctx context.Context, id int) (*models.Task, error) {
	return r.TaskRepo.Get(ctx, id)
}

func (r *Repository) UpdateTaskStatus(ctx context.Context, id int, status models.Status) error {
	return r.TaskRepo.UpdateStatus(ctx, id, status)
}

func (r *Repository) UpdateTaskPriority(ctx context.Context, id, priority int) error {
	return r.TaskRepo.UpdatePriority(ctx, id, priority)
}

func (r *Repository) UpdateTaskInfo(ctx context.Context, id int, content, tag string, priority int, description string) error {
	return r.TaskRepo.UpdateInfo(ctx, id, content, tag, priority, description)
}

func (r *Repository) DeleteTask(ctx context.Context, id int) error {
	return r.TaskRepo.Delete(ctx, id)
}

func (r *Repository) TasksForDate(ctx context.Context, dateStr string, activeTags []string) ([]*models.Task, error) {
	return r.TaskRepo.ForDate(ctx, dateStr, activeTags)
}

func (r *Repository) SearchTasks(ctx context.Context, keyword string) ([]*models.Task, error) {
	return r.TaskRepo.Search(ctx, keyword)
}

func (r *Repository) FilterTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error) {
	return r.TaskRepo.Filter(ctx, filter)
}

func (r *Repository) AllTasks(ctx context.Context) ([]*models.Task, error) {
	return r.TaskRepo.All(ctx)
}

func (r *Repository) MonthSummary(ctx context.Context, year, month int, activeTags []string) (models.MonthSummary, error) {
	return r.TaskRepo.MonthSummary(ctx, year, month, activeTags)
}

// Wrapper methods for DataRepo
func (r *Repository) GetStats(ctx context.Context) (models.Stats, error) {
	return r.DataRepo.Stats(ctx)
}

func (r *Repository) ImportData(ctx context.Context, tags []models.Tag, tasks []models.Task) (int, error) {
	return r.DataRepo.Import(ctx, tags, tasks)
}

func (r *Repository) BackupTo(ctx context.Context, destPath string) error {
	return r.DataRepo.Backup(ctx, destPath)
}
