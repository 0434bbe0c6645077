package task

import (
	"errors"

	"github.com/thenoetrevino/myday/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrInvalidTaskID    = errors.New("invalid task ID")
	ErrInvalidDate      = errors.New("invalid date (must be YYYY-MM-DD)")
	ErrEmptyContent     = errors.New("task content cannot be empty")
	ErrEmptyTag         = errors.New("task tag cannot be empty")
	ErrEmptyStatus      = errors.New("task status cannot be empty")
	ErrInvalidPriority  = errors.New("invalid priority (must be 0-5)")
	ErrInvalidDateRange = errors.New("end date is before start date")

	// Business logic errors
	ErrTaskNotFound = models.ErrTaskNotFound
)
