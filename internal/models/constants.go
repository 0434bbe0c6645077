package models

// ============================================================================
// PRIORITY CONSTANTS
// ============================================================================

const (
	MinPriority = 0
	MaxPriority = 5

	// HighPriorityThreshold is the lowest priority counted as "high" in statistics
	HighPriorityThreshold = 3
)

// ============================================================================
// DATE CONSTANTS
// ============================================================================

// DateLayout is the storage format of Task.DateStr
const DateLayout = "2006-01-02"

// MaxFilterSpanDays caps the date range of an advanced search
const MaxFilterSpanDays = 365
