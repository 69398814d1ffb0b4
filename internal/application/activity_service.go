package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mergington/activities/internal/persistence"
)

// Operation labels reported to the outcome recorder.
const (
	OperationSignup     = "signup"
	OperationUnregister = "unregister"

	outcomeSuccess = "success"
)

// OutcomeRecorder receives the result of every roster change.
type OutcomeRecorder interface {
	RecordOutcome(operation, activity, outcome string)
	SetParticipants(activity string, count int)
}

type noopRecorder struct{}

func (noopRecorder) RecordOutcome(string, string, string) {}
func (noopRecorder) SetParticipants(string, int)          {}

// ActivityService exposes the activity directory: listing activities and
// adding or removing participants by email.
type ActivityService struct {
	activities persistence.ActivityRepository
	recorder   OutcomeRecorder
	logger     *slog.Logger
}

// NewActivityService constructs an activity service backed by the given repository.
func NewActivityService(activities persistence.ActivityRepository) *ActivityService {
	return NewActivityServiceWithLogger(activities, nil, nil)
}

// NewActivityServiceWithLogger constructs an activity service with a recorder and logger.
func NewActivityServiceWithLogger(activities persistence.ActivityRepository, recorder OutcomeRecorder, logger *slog.Logger) *ActivityService {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityService{activities: activities, recorder: recorder, logger: logger}
}

// ListActivities returns every activity with its current roster in catalog order.
func (s *ActivityService) ListActivities(ctx context.Context) (activities []Activity, err error) {
	if s == nil {
		err = fmt.Errorf("ActivityService is nil")
		return
	}
	if s.activities == nil {
		err = fmt.Errorf("activity repository not configured")
		return
	}

	logger := operationLogger(ctx, s.logger, "ListActivities")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to list activities", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("result_count", len(activities)).DebugContext(ctx, "activities listed")
	}()

	var records []persistence.Activity
	records, err = s.activities.ListActivities(ctx)
	if err != nil {
		err = mapStoreError(err)
		return
	}

	activities = make([]Activity, 0, len(records))
	for _, record := range records {
		activities = append(activities, toActivity(record))
	}
	return
}

// Signup adds email to the roster of the named activity. Capacity is
// informational and never checked here.
func (s *ActivityService) Signup(ctx context.Context, params EnrollmentParams) (result Confirmation, err error) {
	if s == nil {
		err = fmt.Errorf("ActivityService is nil")
		return
	}
	if s.activities == nil {
		err = fmt.Errorf("activity repository not configured")
		return
	}

	logger := operationLogger(ctx, s.logger, "Signup", enrollmentAttrs(params)...)
	defer func() {
		s.record(OperationSignup, params.ActivityName, result.Activity, err)
		if err != nil {
			logger.WarnContext(ctx, "signup rejected", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("participant_count", len(result.Activity.Participants)).InfoContext(ctx, "participant signed up")
	}()

	if vErr := validateEnrollment(params); vErr.HasErrors() {
		err = vErr
		return
	}

	var updated persistence.Activity
	updated, err = s.activities.AddParticipant(ctx, params.ActivityName, params.Email)
	if err != nil {
		err = mapStoreError(err)
		return
	}

	result = Confirmation{
		Message:  fmt.Sprintf("Signed up %s for %s", params.Email, params.ActivityName),
		Activity: toActivity(updated),
	}
	return
}

// Unregister removes email from the roster of the named activity.
func (s *ActivityService) Unregister(ctx context.Context, params EnrollmentParams) (result Confirmation, err error) {
	if s == nil {
		err = fmt.Errorf("ActivityService is nil")
		return
	}
	if s.activities == nil {
		err = fmt.Errorf("activity repository not configured")
		return
	}

	logger := operationLogger(ctx, s.logger, "Unregister", enrollmentAttrs(params)...)
	defer func() {
		s.record(OperationUnregister, params.ActivityName, result.Activity, err)
		if err != nil {
			logger.WarnContext(ctx, "unregister rejected", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("participant_count", len(result.Activity.Participants)).InfoContext(ctx, "participant unregistered")
	}()

	if vErr := validateEnrollment(params); vErr.HasErrors() {
		err = vErr
		return
	}

	var updated persistence.Activity
	updated, err = s.activities.RemoveParticipant(ctx, params.ActivityName, params.Email)
	if err != nil {
		err = mapStoreError(err)
		return
	}

	result = Confirmation{
		Message:  fmt.Sprintf("Unregistered %s from %s", params.Email, params.ActivityName),
		Activity: toActivity(updated),
	}
	return
}

// SyncParticipantGauges pushes the current roster size of every activity to
// the recorder.
func (s *ActivityService) SyncParticipantGauges(ctx context.Context) error {
	activities, err := s.ListActivities(ctx)
	if err != nil {
		return err
	}
	for _, activity := range activities {
		s.recorder.SetParticipants(activity.Name, len(activity.Participants))
	}
	return nil
}

func (s *ActivityService) record(operation, activityName string, updated Activity, err error) {
	if err != nil {
		// Names that did not resolve to an activity are reported as "unknown".
		label := activityName
		if errors.Is(err, ErrNotFound) || ErrorKind(err) == "validation" {
			label = "unknown"
		}
		s.recorder.RecordOutcome(operation, label, ErrorKind(err))
		return
	}
	s.recorder.RecordOutcome(operation, activityName, outcomeSuccess)
	s.recorder.SetParticipants(activityName, len(updated.Participants))
}

// validateEnrollment only rejects absent values. Whitespace is a legal email
// and an activity name that is blank resolves to ErrNotFound in the store.
func validateEnrollment(params EnrollmentParams) *ValidationError {
	vErr := &ValidationError{}

	if params.ActivityName == "" {
		vErr.add("activity_name", "activity name is required")
	}
	if params.Email == "" {
		vErr.add("email", "email is required")
	}

	return vErr
}

func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, persistence.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, persistence.ErrDuplicate):
		return ErrAlreadyRegistered
	case errors.Is(err, persistence.ErrMissing):
		return ErrNotRegistered
	}
	return fmt.Errorf("activity store: %w", err)
}
