package cli

import (
	"errors"

	calendarservice "github.com/thenoetrevino/myday/internal/services/calendar"
	tagservice "github.com/thenoetrevino/myday/internal/services/tag"
	taskservice "github.com/thenoetrevino/myday/internal/services/task"
	transferservice "github.com/thenoetrevino/myday/internal/services/transfer"
)

// validationErrors are reported with ExitValidation
var validationErrors = []error{
	taskservice.ErrInvalidTaskID,
	taskservice.ErrInvalidDate,
	taskservice.ErrEmptyContent,
	taskservice.ErrEmptyTag,
	taskservice.ErrEmptyStatus,
	taskservice.ErrInvalidPriority,
	taskservice.ErrInvalidDateRange,
	tagservice.ErrEmptyName,
	tagservice.ErrNameTooLong,
	tagservice.ErrInvalidColor,
	calendarservice.ErrInvalidMonth,
	calendarservice.ErrInvalidYear,
	transferservice.ErrEmptyBackupDir,
}

// ServiceError reports an error returned by a service and maps it to an
// exit code. fallbackCode names unexpected failures.
func (f *OutputFormatter) ServiceError(err error, fallbackCode string) error {
	switch {
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return f.Fail(ExitNotFound, "TASK_NOT_FOUND", err, "Use 'myday task list' to see task IDs")
	case errors.Is(err, transferservice.ErrInvalidDocument):
		return f.Fail(ExitDataErr, "INVALID_DOCUMENT", err, "Import files must come from 'myday export'")
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return f.Fail(ExitValidation, "VALIDATION_ERROR", err, "")
		}
	}
	return f.Fail(ExitError, fallbackCode, err, "")
}
