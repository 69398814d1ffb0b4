package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mergington/activities/internal/application"
)

type activityService interface {
	ListActivities(ctx context.Context) ([]application.Activity, error)
	Signup(ctx context.Context, params application.EnrollmentParams) (application.Confirmation, error)
	Unregister(ctx context.Context, params application.EnrollmentParams) (application.Confirmation, error)
}

type ActivityHandler struct {
	service   activityService
	responder responder
	logger    *slog.Logger
}

func NewActivityHandler(service activityService, logger *slog.Logger) *ActivityHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityHandler{service: service, responder: newResponder(logger), logger: logger}
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toActivityCatalog(activities))
}

func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.changeEnrollment(w, r, "Signup", h.service.Signup)
}

func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.changeEnrollment(w, r, "Unregister", h.service.Unregister)
}

func (h *ActivityHandler) changeEnrollment(w http.ResponseWriter, r *http.Request, operation string, change func(context.Context, application.EnrollmentParams) (application.Confirmation, error)) {
	name, _ := ActivityNameFromContext(r.Context())
	email := r.URL.Query().Get("email")
	requestLogger(r.Context(), h.logger, "ActivityHandler", operation).
		DebugContext(r.Context(), "enrollment request received", "email_present", r.URL.Query().Has("email"))

	// Outcome logging belongs to the service.
	result, err := change(r.Context(), application.EnrollmentParams{ActivityName: name, Email: email})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeMessage(r.Context(), w, result.Message)
}

type activityDTO struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

type activityEntry struct {
	name     string
	activity activityDTO
}

// activityCatalog encodes as a JSON object keyed by activity name, keeping
// catalog order rather than the sorted key order of a Go map.
type activityCatalog []activityEntry

func (c activityCatalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.activity)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func toActivityDTO(activity application.Activity) activityDTO {
	participants := activity.Participants
	if participants == nil {
		participants = []string{}
	}
	return activityDTO{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}

func toActivityCatalog(activities []application.Activity) activityCatalog {
	out := make(activityCatalog, 0, len(activities))
	for _, activity := range activities {
		out = append(out, activityEntry{name: activity.Name, activity: toActivityDTO(activity)})
	}
	return out
}
