package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mergington/activities/internal/logging"
)

// operationLogger prefers the request-scoped logger carried by ctx over base
// and tags it with the service operation.
func operationLogger(ctx context.Context, base *slog.Logger, operation string, attrs ...any) *slog.Logger {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = base
	}
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(append([]any{"service", "ActivityService", "operation", operation}, attrs...)...)
}

func enrollmentAttrs(params EnrollmentParams) []any {
	return []any{"activity", params.ActivityName, "email", params.Email}
}

// ErrorKind maps sentinel and validation errors to a stable logging label.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, ErrNotRegistered):
		return "not_registered"
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return "validation"
	}

	return "unexpected"
}
