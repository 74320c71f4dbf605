package data

import "errors"

// Errors returned by model operations.
var (
	ErrTabNotFound     = errors.New("tab not found")
	ErrInvalidPosition = errors.New("invalid tab position")
	ErrInvalidOrder    = errors.New("order is not a permutation of open tabs")
	ErrInvalidRow      = errors.New("row index out of range")
	ErrInvalidColumn   = errors.New("column index out of range")
	ErrInvalidPort     = errors.New("invalid port")
)
