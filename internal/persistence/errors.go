package persistence

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("persistence: not found")
	// ErrDuplicate is returned when an insert would violate a uniqueness rule.
	ErrDuplicate = errors.New("persistence: duplicate")
	// ErrMissing is returned when a removal targets a member that is not present.
	ErrMissing = errors.New("persistence: member missing")
	// ErrConstraintViolation is returned when a record fails a structural check.
	ErrConstraintViolation = errors.New("persistence: constraint violation")
)
