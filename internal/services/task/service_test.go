package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/myday/internal/database"
	"github.com/thenoetrevino/myday/internal/models"
	"github.com/thenoetrevino/myday/internal/testutil"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewService(database.NewRepository(db))
}

func intPtr(v int) *int { return &v }

// ============================================================================
// CREATE
// ============================================================================

func TestCreateTask(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, CreateTaskRequest{
		Date:        "2024-05-01",
		Content:     "写周报",
		Tag:         "工作",
		Priority:    2,
		Description: "**本周**进展",
	})
	require.NoError(t, err)
	assert.Positive(t, task.ID)
	assert.Equal(t, models.StatusTodo, task.Status)
	assert.Equal(t, "**本周**进展", task.Description)

	got, err := svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func TestCreateTask_KeepsExplicitStatus(t *testing.T) {
	svc := newTestService(t)

	task, err := svc.CreateTask(context.Background(), CreateTaskRequest{
		Date: "2024-05-01", Content: "跑步", Tag: "健康", Status: models.StatusInProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, task.Status)
}

func TestCreateTask_Validation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		req     CreateTaskRequest
		wantErr error
	}{
		{"empty content", CreateTaskRequest{Date: "2024-05-01", Tag: "工作"}, ErrEmptyContent},
		{"empty tag", CreateTaskRequest{Date: "2024-05-01", Content: "x"}, ErrEmptyTag},
		{"bad date", CreateTaskRequest{Date: "2024/05/01", Content: "x", Tag: "工作"}, ErrInvalidDate},
		{"missing date", CreateTaskRequest{Content: "x", Tag: "工作"}, ErrInvalidDate},
		{"priority too high", CreateTaskRequest{Date: "2024-05-01", Content: "x", Tag: "工作", Priority: 6}, ErrInvalidPriority},
		{"negative priority", CreateTaskRequest{Date: "2024-05-01", Content: "x", Tag: "工作", Priority: -1}, ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTask(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateTask_UnknownTagAllowed(t *testing.T) {
	svc := newTestService(t)

	task, err := svc.CreateTask(context.Background(), CreateTaskRequest{
		Date: "2024-05-01", Content: "x", Tag: "不存在",
	})
	require.NoError(t, err)
	assert.Equal(t, "不存在", task.Tag)
}

// ============================================================================
// READ
// ============================================================================

func TestGetTask_Errors(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetTask(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidTaskID)

	_, err = svc.GetTask(context.Background(), 999)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTasksForDate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, req := range []CreateTaskRequest{
		{Date: "2024-05-01", Content: "low", Tag: "工作", Priority: 1},
		{Date: "2024-05-01", Content: "high", Tag: "生活", Priority: 4},
		{Date: "2024-05-01", Content: "hidden", Tag: "学习", Priority: 5},
		{Date: "2024-05-02", Content: "other day", Tag: "工作", Priority: 5},
	} {
		_, err := svc.CreateTask(ctx, req)
		require.NoError(t, err)
	}

	tasks, err := svc.TasksForDate(ctx, "2024-05-01", []string{"工作", "生活"})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "high", tasks[0].Content)
	assert.Equal(t, "low", tasks[1].Content)

	_, err = svc.TasksForDate(ctx, "May 1", []string{"工作"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestSearch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, CreateTaskRequest{Date: "2024-05-01", Content: "Buy milk", Tag: "生活"})
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, CreateTaskRequest{Date: "2024-06-01", Content: "call", Tag: "生活", Description: "about milk"})
	require.NoError(t, err)

	tasks, err := svc.Search(ctx, "milk")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "2024-06-01", tasks[0].DateStr)

	tasks, err = svc.Search(ctx, "MILK")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

// ============================================================================
// FILTER
// ============================================================================

func TestFilter(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, req := range []CreateTaskRequest{
		{Date: "2024-05-01", Content: "a", Tag: "工作", Priority: 1},
		{Date: "2024-05-03", Content: "b", Tag: "工作", Priority: 4},
		{Date: "2024-05-10", Content: "c", Tag: "生活", Priority: 5},
		{Date: "2024-06-01", Content: "d", Tag: "工作", Priority: 5},
	} {
		_, err := svc.CreateTask(ctx, req)
		require.NoError(t, err)
	}

	tests := []struct {
		name string
		req  FilterRequest
		want []string
	}{
		{
			name: "range and tags",
			req:  FilterRequest{StartDate: "2024-05-01", EndDate: "2024-05-31", Tags: []string{"工作", "生活"}},
			want: []string{"a", "b", "c"},
		},
		{
			name: "min priority",
			req:  FilterRequest{StartDate: "2024-05-01", EndDate: "2024-06-30", Tags: []string{"工作"}, MinPriority: intPtr(3)},
			want: []string{"b", "d"},
		},
		{
			name: "keyword",
			req:  FilterRequest{StartDate: "2024-05-01", EndDate: "2024-06-30", Tags: []string{"工作", "生活"}, Keyword: "c"},
			want: []string{"c"},
		},
		{
			name: "single day",
			req:  FilterRequest{StartDate: "2024-05-03", EndDate: "2024-05-03", Tags: []string{"工作"}},
			want: []string{"b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := svc.Filter(ctx, tt.req)
			require.NoError(t, err)
			got := make([]string, 0, len(tasks))
			for _, task := range tasks {
				got = append(got, task.Content)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_Errors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Filter(ctx, FilterRequest{StartDate: "2024-05-10", EndDate: "2024-05-01"})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.Filter(ctx, FilterRequest{StartDate: "2024-02-30", EndDate: "2024-03-01"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.Filter(ctx, FilterRequest{StartDate: "", EndDate: "2024-03-01"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.Filter(ctx, FilterRequest{StartDate: "2024-01-01", EndDate: "2024-03-01", MinPriority: intPtr(9)})
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestFilter_SpanIsCapped(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, CreateTaskRequest{Date: "2024-12-31", Content: "inside", Tag: "工作"})
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, CreateTaskRequest{Date: "2025-06-01", Content: "outside", Tag: "工作"})
	require.NoError(t, err)

	tasks, err := svc.Filter(ctx, FilterRequest{StartDate: "2024-01-01", EndDate: "2025-12-31", Tags: []string{"工作"}})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "inside", tasks[0].Content)
}

// ============================================================================
// UPDATE / DELETE
// ============================================================================

func TestUpdateStatusAndPriority(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, CreateTaskRequest{Date: "2024-05-01", Content: "x", Tag: "工作"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, task.ID, models.StatusOnHold))
	require.NoError(t, svc.UpdatePriority(ctx, task.ID, 5))

	got, err := svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnHold, got.Status)
	assert.Equal(t, 5, got.Priority)

	assert.ErrorIs(t, svc.UpdatePriority(ctx, task.ID, 6), ErrInvalidPriority)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, task.ID, ""), ErrEmptyStatus)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, 0, models.StatusDone), ErrInvalidTaskID)

	// Unknown IDs are silently ignored
	assert.NoError(t, svc.UpdateStatus(ctx, 999, models.StatusDone))
	assert.NoError(t, svc.UpdatePriority(ctx, 999, 1))
}

func TestUpdateInfo(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, CreateTaskRequest{Date: "2024-05-01", Content: "x", Tag: "工作", Status: models.StatusInProgress})
	require.NoError(t, err)

	err = svc.UpdateInfo(ctx, UpdateTaskInfoRequest{
		TaskID: task.ID, Content: "y", Tag: "生活", Priority: 3, Description: "notes",
	})
	require.NoError(t, err)

	got, err := svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "y", got.Content)
	assert.Equal(t, "生活", got.Tag)
	assert.Equal(t, 3, got.Priority)
	assert.Equal(t, "notes", got.Description)
	assert.Equal(t, models.StatusInProgress, got.Status)
	assert.Equal(t, "2024-05-01", got.DateStr)

	err = svc.UpdateInfo(ctx, UpdateTaskInfoRequest{TaskID: task.ID, Tag: "生活"})
	assert.ErrorIs(t, err, ErrEmptyContent)
	err = svc.UpdateInfo(ctx, UpdateTaskInfoRequest{Content: "y", Tag: "生活"})
	assert.ErrorIs(t, err, ErrInvalidTaskID)
}

func TestToggleDone(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, CreateTaskRequest{Date: "2024-05-01", Content: "x", Tag: "工作", Status: models.StatusOnHold})
	require.NoError(t, err)

	toggled, err := svc.ToggleDone(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, toggled.Status)

	toggled, err = svc.ToggleDone(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusTodo, toggled.Status)

	_, err = svc.ToggleDone(ctx, 999)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, CreateTaskRequest{Date: "2024-05-01", Content: "x", Tag: "工作"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, task.ID))
	_, err = svc.GetTask(ctx, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	assert.NoError(t, svc.DeleteTask(ctx, task.ID))
	assert.ErrorIs(t, svc.DeleteTask(ctx, -1), ErrInvalidTaskID)
}
