package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/myday/internal/database"
	"github.com/thenoetrevino/myday/internal/models"
	"github.com/thenoetrevino/myday/internal/services/validation"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTask(ctx context.Context, taskID int) (*models.Task, error)
	TasksForDate(ctx context.Context, date string, activeTags []string) ([]*models.Task, error)
	Search(ctx context.Context, keyword string) ([]*models.Task, error)
	Filter(ctx context.Context, req FilterRequest) ([]*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateStatus(ctx context.Context, taskID int, status models.Status) error
	UpdatePriority(ctx context.Context, taskID, priority int) error
	UpdateInfo(ctx context.Context, req UpdateTaskInfoRequest) error
	ToggleDone(ctx context.Context, taskID int) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Date        string        `validate:"datestr"`
	Content     string        `validate:"required"`
	Status      models.Status // Optional: empty means StatusTodo
	Tag         string        `validate:"required"`
	Priority    int           `validate:"min=0,max=5"`
	Description string
}

// UpdateTaskInfoRequest carries the fields an edit may change.
// Status and date are deliberately absent.
type UpdateTaskInfoRequest struct {
	TaskID      int    `validate:"gt=0"`
	Content     string `validate:"required"`
	Tag         string `validate:"required"`
	Priority    int    `validate:"min=0,max=5"`
	Description string
}

// FilterRequest describes an advanced search
type FilterRequest struct {
	StartDate   string `validate:"datestr"`
	EndDate     string `validate:"datestr"`
	Tags        []string
	MinPriority *int `validate:"omitempty,min=0,max=5"`
	Keyword     string
}

// service implements Service interface
type service struct {
	repo     database.TaskRepository
	validate *validator.Validate
}

// NewService creates a new task service
func NewService(repo database.TaskRepository) Service {
	return &service{
		repo:     repo,
		validate: validation.New(),
	}
}

// GetTask retrieves a single task
func (s *service) GetTask(ctx context.Context, taskID int) (*models.Task, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	return s.repo.GetTask(ctx, taskID)
}

// TasksForDate lists one day's tasks under the active tags
func (s *service) TasksForDate(ctx context.Context, date string, activeTags []string) ([]*models.Task, error) {
	if !validation.IsDateStr(date) {
		return nil, ErrInvalidDate
	}
	return s.repo.TasksForDate(ctx, date, activeTags)
}

// Search finds tasks by a case-sensitive substring of content or description
func (s *service) Search(ctx context.Context, keyword string) ([]*models.Task, error) {
	return s.repo.SearchTasks(ctx, keyword)
}

// Filter runs an advanced search. Ranges longer than MaxFilterSpanDays are
// truncated at the end.
func (s *service) Filter(ctx context.Context, req FilterRequest) ([]*models.Task, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, mapValidationError(err)
	}

	start, err := time.Parse(models.DateLayout, req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := time.Parse(models.DateLayout, req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}
	if limit := start.AddDate(0, 0, models.MaxFilterSpanDays); end.After(limit) {
		slog.Debug("filter range truncated", "start", req.StartDate, "end", req.EndDate, "limit", limit.Format(models.DateLayout))
		end = limit
	}

	return s.repo.FilterTasks(ctx, models.TaskFilter{
		StartDate:   start.Format(models.DateLayout),
		EndDate:     end.Format(models.DateLayout),
		Tags:        req.Tags,
		MinPriority: req.MinPriority,
		Keyword:     req.Keyword,
	})
}

// CreateTask handles task creation with validation
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, mapValidationError(err)
	}

	status := req.Status
	if status == "" {
		status = models.StatusTodo
	}

	task, err := s.repo.AddTask(ctx, req.Date, req.Content, status, req.Tag, req.Priority, req.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	slog.Debug("task created", "id", task.ID, "date", task.DateStr, "tag", task.Tag)
	return task, nil
}

// UpdateStatus sets a task's status. Unknown task IDs are ignored.
func (s *service) UpdateStatus(ctx context.Context, taskID int, status models.Status) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	if status == "" {
		return ErrEmptyStatus
	}
	return s.repo.UpdateTaskStatus(ctx, taskID, status)
}

// UpdatePriority sets a task's priority. Unknown task IDs are ignored.
func (s *service) UpdatePriority(ctx context.Context, taskID, priority int) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	if priority < models.MinPriority || priority > models.MaxPriority {
		return ErrInvalidPriority
	}
	return s.repo.UpdateTaskPriority(ctx, taskID, priority)
}

// UpdateInfo edits content, tag, priority and description
func (s *service) UpdateInfo(ctx context.Context, req UpdateTaskInfoRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return mapValidationError(err)
	}
	return s.repo.UpdateTaskInfo(ctx, req.TaskID, req.Content, req.Tag, req.Priority, req.Description)
}

// ToggleDone flips a task between done and todo and returns the updated task
func (s *service) ToggleDone(ctx context.Context, taskID int) (*models.Task, error) {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	task.Status = task.Status.Toggled()
	if err := s.repo.UpdateTaskStatus(ctx, task.ID, task.Status); err != nil {
		return nil, fmt.Errorf("failed to toggle task %d: %w", taskID, err)
	}
	return task, nil
}

// DeleteTask removes a task. Unknown task IDs are ignored.
func (s *service) DeleteTask(ctx context.Context, taskID int) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	return s.repo.DeleteTask(ctx, taskID)
}

// mapValidationError translates the first failed rule into a sentinel error
func mapValidationError(err error) error {
	switch validation.FirstFailure(err) {
	case "TaskID":
		return ErrInvalidTaskID
	case "Date", "StartDate", "EndDate":
		return ErrInvalidDate
	case "Content":
		return ErrEmptyContent
	case "Tag":
		return ErrEmptyTag
	case "Priority", "MinPriority":
		return ErrInvalidPriority
	default:
		return err
	}
}
