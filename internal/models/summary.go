package models

// DaySummary is the single badge a calendar cell shows for one day
type DaySummary struct {
	Color    string `json:"color"`
	Priority int    `json:"priority"`
	Tag      string `json:"tag"`
}

// MonthSummary maps a YYYY-MM-DD date to that day's badge
type MonthSummary map[string]DaySummary

// Stats holds the aggregate counters shown by the statistics view
type Stats struct {
	Total          int `json:"total"`
	Done           int `json:"done"`
	Todo           int `json:"todo"`
	HighPriority   int `json:"high_priority"`
	CompletionRate int `json:"completion_rate"` // whole percent
}

// NewStats derives the remaining counters from the raw totals
func NewStats(total, done, highPriority int) Stats {
	s := Stats{
		Total:        total,
		Done:         done,
		Todo:         total - done,
		HighPriority: highPriority,
	}
	if total > 0 {
		s.CompletionRate = done * 100 / total
	}
	return s
}
