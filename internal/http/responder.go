package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/mergington/activities/internal/application"
)

// Detail messages returned to clients.
const (
	detailActivityNotFound  = "Activity not found"
	detailAlreadySignedUp   = "Student already signed up"
	detailNotSignedUp       = "Student not signed up for this activity"
	detailNotFound          = "Not Found"
	detailMethodNotAllowed  = "Method Not Allowed"
	detailInternalError     = "Internal Server Error"
	detailValidationFailure = "Invalid request"
)

type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	if logger == nil {
		logger = slog.Default()
	}
	return responder{logger: logger}
}

func (r responder) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}

	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.loggerFor(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (r responder) writeDetail(ctx context.Context, w http.ResponseWriter, status int, detail string) {
	r.writeJSON(ctx, w, status, detailResponse{Detail: detail})
}

func (r responder) writeMessage(ctx context.Context, w http.ResponseWriter, message string) {
	r.writeJSON(ctx, w, http.StatusOK, messageResponse{Message: message})
}

func (r responder) handleServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		r.writeDetail(ctx, w, http.StatusInternalServerError, detailInternalError)
		return
	}

	switch {
	case errors.Is(err, application.ErrNotFound):
		r.writeDetail(ctx, w, http.StatusNotFound, detailActivityNotFound)
	case errors.Is(err, application.ErrAlreadyRegistered):
		r.writeDetail(ctx, w, http.StatusBadRequest, detailAlreadySignedUp)
	case errors.Is(err, application.ErrNotRegistered):
		r.writeDetail(ctx, w, http.StatusBadRequest, detailNotSignedUp)
	default:
		var vErr *application.ValidationError
		if errors.As(err, &vErr) {
			r.writeDetail(ctx, w, http.StatusUnprocessableEntity, firstValidationMessage(vErr))
			return
		}

		r.loggerFor(ctx).ErrorContext(ctx, "request failed", "error", err)
		r.writeDetail(ctx, w, http.StatusInternalServerError, detailInternalError)
	}
}

func (r responder) loggerFor(ctx context.Context) *slog.Logger {
	if logger := LoggerFromContext(ctx); logger != nil {
		return logger
	}
	return r.logger
}

func firstValidationMessage(vErr *application.ValidationError) string {
	if vErr == nil || len(vErr.FieldErrors) == 0 {
		return detailValidationFailure
	}

	fields := make([]string, 0, len(vErr.FieldErrors))
	for field := range vErr.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return vErr.FieldErrors[fields[0]]
}

func methodNotAllowed(ctx context.Context, r responder, w http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	r.writeDetail(ctx, w, http.StatusMethodNotAllowed, detailMethodNotAllowed)
}

type detailResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}
