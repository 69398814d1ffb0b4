package application

import "errors"

var (
	// ErrNotFound is returned when the named activity does not exist.
	ErrNotFound = errors.New("application: activity not found")
	// ErrAlreadyRegistered is returned when a student signs up twice for the same activity.
	ErrAlreadyRegistered = errors.New("application: student already signed up")
	// ErrNotRegistered is returned when a student unregisters from an activity they never joined.
	ErrNotRegistered = errors.New("application: student not signed up for this activity")
)

// ValidationError captures field level validation issues that callers can surface to users.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}
