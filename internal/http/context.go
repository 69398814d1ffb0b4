package http

import (
	"context"
	"log/slog"

	"github.com/mergington/activities/internal/logging"
)

type contextKey string

const (
	activityNameContextKey contextKey = "activity_name"
	requestIDContextKey    contextKey = "request_id"
)

// ContextWithLogger returns a derived context carrying a request-scoped logger.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return logging.ContextWithLogger(ctx, logger)
}

// LoggerFromContext extracts the request-scoped logger if one was attached.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx)
}

// ContextWithActivityName injects the activity name resolved from the request path.
func ContextWithActivityName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, activityNameContextKey, name)
}

// ActivityNameFromContext extracts an activity name previously associated with the context.
func ActivityNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(activityNameContextKey).(string)
	return name, ok
}

// ContextWithRequestID injects the identifier assigned to the current request.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, id)
}

// RequestIDFromContext extracts the identifier assigned to the current request.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey).(string)
	return id, ok
}
