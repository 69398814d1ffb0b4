// Package memory keeps the activity directory in process memory.
//
// The store is volatile: its content is lost when the process exits and is
// rebuilt from the seed catalog on the next start.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mergington/activities/internal/persistence"
)

var _ persistence.ActivityRepository = (*ActivityStore)(nil)

// ActivityStore holds the activity-to-roster mapping guarded by a single lock.
type ActivityStore struct {
	mu         sync.RWMutex
	order      []string
	activities map[string]*persistence.Activity
}

// NewActivityStore constructs a store populated with the provided seed.
func NewActivityStore(seed []persistence.Activity) (*ActivityStore, error) {
	store := &ActivityStore{}
	if err := store.Reset(seed); err != nil {
		return nil, err
	}
	return store, nil
}

// Reset replaces the whole directory with seed. The previous content is kept
// when seed is rejected.
func (s *ActivityStore) Reset(seed []persistence.Activity) error {
	order := make([]string, 0, len(seed))
	activities := make(map[string]*persistence.Activity, len(seed))

	for i, activity := range seed {
		if err := validateSeedActivity(activity); err != nil {
			return fmt.Errorf("seed activity %d: %w", i, err)
		}
		if _, exists := activities[activity.Name]; exists {
			return fmt.Errorf("seed activity %q: %w", activity.Name, persistence.ErrDuplicate)
		}
		clone := activity.Clone()
		activities[activity.Name] = &clone
		order = append(order, activity.Name)
	}

	s.mu.Lock()
	s.order = order
	s.activities = activities
	s.mu.Unlock()
	return nil
}

// ListActivities returns a copy of every activity in seed order.
func (s *ActivityStore) ListActivities(ctx context.Context) ([]persistence.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]persistence.Activity, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.activities[name].Clone())
	}
	return out, nil
}

// AddParticipant appends email to the roster of the named activity.
func (s *ActivityStore) AddParticipant(ctx context.Context, name, email string) (persistence.Activity, error) {
	if err := ctx.Err(); err != nil {
		return persistence.Activity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return persistence.Activity{}, persistence.ErrNotFound
	}
	if activity.HasParticipant(email) {
		return persistence.Activity{}, persistence.ErrDuplicate
	}

	activity.Participants = append(activity.Participants, email)
	return activity.Clone(), nil
}

// RemoveParticipant drops email from the roster of the named activity while
// keeping the remaining participants in their original order.
func (s *ActivityStore) RemoveParticipant(ctx context.Context, name, email string) (persistence.Activity, error) {
	if err := ctx.Err(); err != nil {
		return persistence.Activity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return persistence.Activity{}, persistence.ErrNotFound
	}

	index := -1
	for i, existing := range activity.Participants {
		if existing == email {
			index = i
			break
		}
	}
	if index < 0 {
		return persistence.Activity{}, persistence.ErrMissing
	}

	activity.Participants = append(activity.Participants[:index], activity.Participants[index+1:]...)
	return activity.Clone(), nil
}

func validateSeedActivity(activity persistence.Activity) error {
	if strings.TrimSpace(activity.Name) == "" {
		return fmt.Errorf("name is empty: %w", persistence.ErrConstraintViolation)
	}
	if activity.MaxParticipants <= 0 {
		return fmt.Errorf("%q max participants must be positive: %w", activity.Name, persistence.ErrConstraintViolation)
	}

	seen := make(map[string]struct{}, len(activity.Participants))
	for _, email := range activity.Participants {
		if _, dup := seen[email]; dup {
			return fmt.Errorf("%q participant %q listed twice: %w", activity.Name, email, persistence.ErrDuplicate)
		}
		seen[email] = struct{}{}
	}
	return nil
}
