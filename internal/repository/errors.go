package repository

import "errors"

// Storage-layer sentinel errors. Implementations map driver errors onto
// these so the service layer never inspects database error strings.
var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry means an insert or update violated a unique constraint.
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
)

var (
	ErrUserNotFound = ErrNotFound
)
