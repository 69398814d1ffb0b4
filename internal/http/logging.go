package http

import (
	"context"
	"log/slog"
)

// requestLogger resolves the logger for a handler operation. The scoped logger
// installed by RequestLogger already carries request_id; without it the
// fallback is tagged from the context instead. The activity resolved by the
// router is attached when present.
func requestLogger(ctx context.Context, fallback *slog.Logger, handlerName, operation string) *slog.Logger {
	attrs := []any{"handler", handlerName, "operation", operation}

	logger := LoggerFromContext(ctx)
	if logger == nil {
		logger = fallback
		if logger == nil {
			logger = slog.Default()
		}
		if id, ok := RequestIDFromContext(ctx); ok {
			attrs = append(attrs, "request_id", id)
		}
	}
	if name, ok := ActivityNameFromContext(ctx); ok {
		attrs = append(attrs, "activity", name)
	}
	return logger.With(attrs...)
}
