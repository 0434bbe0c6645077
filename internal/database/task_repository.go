package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/myday/internal/models"
)

// TaskRepo handles persistence for tasks
type TaskRepo struct {
	db *sql.DB
}

// ============================================================================
// CRUD OPERATIONS
// ============================================================================

// Create inserts a new task and returns it with its assigned ID
func (r *TaskRepo) Create(ctx context.Context, dateStr, content string, status models.Status, tag string, priority int, description string) (*models.Task, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (date_str, content, status, tag, priority, description) VALUES (?, ?, ?, ?, ?, ?)`,
		dateStr, content, string(status), tag, priority, description,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Task{
		ID:          int(id),
		DateStr:     dateStr,
		Content:     content,
		Status:      status,
		Tag:         tag,
		Priority:    priority,
		Description: description,
	}, nil
}

// Get retrieves a task by ID
func (r *TaskRepo) Get(ctx context.Context, id int) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return task, nil
}

// UpdateStatus sets a task's status. Unknown IDs are ignored.
func (r *TaskRepo) UpdateStatus(ctx context.Context, id int, status models.Status) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update task %d status: %w", id, err)
	}
	return nil
}

// UpdatePriority sets a task's priority. Unknown IDs are ignored.
func (r *TaskRepo) UpdatePriority(ctx context.Context, id, priority int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET priority = ? WHERE id = ?`, priority, id)
	if err != nil {
		return fmt.Errorf("failed to update task %d priority: %w", id, err)
	}
	return nil
}

// UpdateInfo rewrites the editable fields of a task. Status and date are
// left untouched.
func (r *TaskRepo) UpdateInfo(ctx context.Context, id int, content, tag string, priority int, description string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET content = ?, tag = ?, priority = ?, description = ? WHERE id = ?`,
		content, tag, priority, description, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return nil
}

// Delete removes a task. Unknown IDs are ignored.
func (r *TaskRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}

// ============================================================================
// QUERIES
// ============================================================================

// ForDate returns the tasks of one day whose tag is in activeTags, highest
// priority first and oldest first within a priority. An empty activeTags
// selects nothing.
func (r *TaskRepo) ForDate(ctx context.Context, dateStr string, activeTags []string) ([]*models.Task, error) {
	if len(activeTags) == 0 {
		return []*models.Task{}, nil
	}

	placeholders, tagArgs := inClause(activeTags)
	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE date_str = ? AND tag IN (` + placeholders + `)
		ORDER BY priority DESC, id ASC`

	args := append([]any{dateStr}, tagArgs...)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks for %s: %w", dateStr, err)
	}
	return scanTasks(rows)
}

// Search returns tasks whose content or description contains keyword,
// most recent day first. Matching is case-sensitive.
func (r *TaskRepo) Search(ctx context.Context, keyword string) ([]*models.Task, error) {
	// instr instead of LIKE: LIKE folds ASCII case in SQLite
	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+`
		FROM tasks
		WHERE instr(content, ?) > 0 OR instr(COALESCE(description, ''), ?) > 0
		ORDER BY date_str DESC, id ASC`,
		keyword, keyword,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}
	return scanTasks(rows)
}

// Filter runs an advanced search over an inclusive date range. Results come
// day by day, and within a day in ForDate order.
func (r *TaskRepo) Filter(ctx context.Context, f models.TaskFilter) ([]*models.Task, error) {
	if len(f.Tags) == 0 {
		return []*models.Task{}, nil
	}

	placeholders, tagArgs := inClause(f.Tags)
	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE date_str >= ? AND date_str <= ? AND tag IN (` + placeholders + `)`
	args := append([]any{f.StartDate, f.EndDate}, tagArgs...)

	if f.MinPriority != nil {
		query += ` AND priority >= ?`
		args = append(args, *f.MinPriority)
	}
	if f.Keyword != "" {
		query += ` AND (instr(content, ?) > 0 OR instr(COALESCE(description, ''), ?) > 0)`
		args = append(args, f.Keyword, f.Keyword)
	}
	query += ` ORDER BY date_str ASC, priority DESC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to filter tasks: %w", err)
	}
	return scanTasks(rows)
}

// All returns every task in ID order
func (r *TaskRepo) All(ctx context.Context) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return scanTasks(rows)
}

// MonthSummary reduces a month to one badge per day: the first task in
// ForDate order wins. Colors are resolved against the current tag table,
// with FallbackTagColor for tags that no longer exist. An empty activeTags
// selects nothing.
func (r *TaskRepo) MonthSummary(ctx context.Context, year, month int, activeTags []string) (models.MonthSummary, error) {
	summary := models.MonthSummary{}
	if len(activeTags) == 0 {
		return summary, nil
	}

	placeholders, tagArgs := inClause(activeTags)
	query := `SELECT date_str, tag, COALESCE(priority, 0)
		FROM tasks
		WHERE date_str LIKE ? AND tag IN (` + placeholders + `)
		ORDER BY priority DESC, id ASC`

	monthPrefix := fmt.Sprintf("%d-%02d-%%", year, month)
	args := append([]any{monthPrefix}, tagArgs...)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize %d-%02d: %w", year, month, err)
	}

	type badgeRow struct {
		date     string
		tag      string
		priority int
	}
	var badges []badgeRow
	for rows.Next() {
		var b badgeRow
		if err := rows.Scan(&b.date, &b.tag, &b.priority); err != nil {
			rows.Close()
			return nil, err
		}
		badges = append(badges, b)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	// Close before the next query: the pool holds a single connection
	rows.Close()

	colors, err := colorsByName(ctx, r.db)
	if err != nil {
		return nil, err
	}

	for _, b := range badges {
		if _, seen := summary[b.date]; seen {
			continue
		}
		color, ok := colors[b.tag]
		if !ok {
			color = models.FallbackTagColor
		}
		summary[b.date] = models.DaySummary{
			Color:    color,
			Priority: b.priority,
			Tag:      b.tag,
		}
	}
	return summary, nil
}
