package persistence

import "context"

// ActivityRepository exposes the roster operations of the activity directory.
//
// AddParticipant and RemoveParticipant perform their membership check and the
// mutation as one atomic step.
type ActivityRepository interface {
	ListActivities(ctx context.Context) ([]Activity, error)
	AddParticipant(ctx context.Context, name, email string) (Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (Activity, error)
}
