package repositories

import "errors"

// Returned by every repository implementation so services never depend
// on the driver's error values.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")

	// ErrReferenced means other rows still point at the record
	ErrReferenced = errors.New("record is still referenced")
)
