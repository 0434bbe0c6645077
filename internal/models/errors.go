package models

import "errors"

// Domain-specific errors shared by the store and the services
var (
	// ErrTaskNotFound indicates that no task has the requested id
	ErrTaskNotFound = errors.New("task not found")
)
