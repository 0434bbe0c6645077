package tag

import "errors"

// Tag-related errors
var (
	ErrEmptyName    = errors.New("tag name cannot be empty")
	ErrNameTooLong  = errors.New("tag name cannot exceed 50 characters")
	ErrInvalidColor = errors.New("invalid color format (must be hex like #FF5733)")
)
