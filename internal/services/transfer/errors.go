package transfer

import "errors"

// Transfer-related errors
var (
	ErrInvalidDocument = errors.New("invalid data file")
	ErrEmptyBackupDir  = errors.New("backup directory cannot be empty")
)
