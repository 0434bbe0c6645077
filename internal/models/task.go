package models

// Task represents a single to-do item scheduled on a calendar day
type Task struct {
	ID          int    `json:"id"`
	DateStr     string `json:"date_str"` // YYYY-MM-DD
	Content     string `json:"content"`
	Status      Status `json:"status"`
	Tag         string `json:"tag"` // Matches Tag.Name, not enforced
	Priority    int    `json:"priority"`
	Description string `json:"description"`
}

// GetID implements the quiet-mode ID getter used by the CLI formatter
func (t *Task) GetID() int {
	return t.ID
}

// IsDone reports whether the task counts as completed
func (t *Task) IsDone() bool {
	return t.Status.IsDone()
}

// IsHighPriority reports whether the task counts toward the high priority statistic
func (t *Task) IsHighPriority() bool {
	return t.Priority >= HighPriorityThreshold
}

// TaskFilter describes an advanced search over a date range
type TaskFilter struct {
	StartDate   string // inclusive
	EndDate     string // inclusive
	Tags        []string
	MinPriority *int
	Keyword     string
}
