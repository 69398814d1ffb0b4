package application

import "github.com/mergington/activities/internal/persistence"

// Activity is an extracurricular activity as seen by callers of the service.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// EnrollmentParams identifies a participant on an activity roster.
type EnrollmentParams struct {
	ActivityName string
	Email        string
}

// Confirmation reports a successful roster change.
type Confirmation struct {
	Message  string
	Activity Activity
}

func toActivity(record persistence.Activity) Activity {
	participants := make([]string, len(record.Participants))
	copy(participants, record.Participants)
	return Activity{
		Name:            record.Name,
		Description:     record.Description,
		Schedule:        record.Schedule,
		MaxParticipants: record.MaxParticipants,
		Participants:    participants,
	}
}
