package calendar

import "errors"

// Calendar-related errors
var (
	ErrInvalidMonth = errors.New("invalid month (must be 1-12)")
	ErrInvalidYear  = errors.New("invalid year (must be 1-9999)")
)
