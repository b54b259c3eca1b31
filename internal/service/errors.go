package service

import "errors"

var (
	// ErrNotFound marks a lookup against an id or name that does not exist
	// (or is not active where only active items count).
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a duplicate menu item name, active or soft-deleted.
	ErrConflict = errors.New("already exists")
)

// ValidationError marks input the caller can correct; it never changes state.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
