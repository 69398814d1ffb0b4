package testfixtures

import (
	"fmt"
	"sync/atomic"

	"github.com/mergington/activities/internal/catalog"
	"github.com/mergington/activities/internal/persistence"
)

var activityCounter uint64

// SeedActivities returns a fresh copy of the built-in school catalog.
func SeedActivities() []persistence.Activity {
	activities, err := catalog.Default()
	if err != nil {
		panic(fmt.Sprintf("testfixtures: built-in catalog is invalid: %v", err))
	}
	return activities
}

// ActivityFixture represents a deterministic activity record.
type ActivityFixture struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// ActivityOption configures the generated activity fixture.
type ActivityOption func(*ActivityFixture)

// NewActivityFixture returns a deterministic activity fixture with optional overrides.
func NewActivityFixture(opts ...ActivityOption) ActivityFixture {
	idx := atomic.AddUint64(&activityCounter, 1)
	fixture := ActivityFixture{
		Name:            fmt.Sprintf("Activity %03d", idx),
		Description:     fmt.Sprintf("Description for activity %03d", idx),
		Schedule:        "Mondays, 3:30 PM - 4:30 PM",
		MaxParticipants: 10,
		Participants:    []string{fmt.Sprintf("student-%03d@mergington.edu", idx)},
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithActivityName overrides the activity name.
func WithActivityName(name string) ActivityOption {
	return func(f *ActivityFixture) {
		f.Name = name
	}
}

// WithMaxParticipants overrides the informational capacity.
func WithMaxParticipants(max int) ActivityOption {
	return func(f *ActivityFixture) {
		f.MaxParticipants = max
	}
}

// WithParticipants replaces the roster.
func WithParticipants(emails ...string) ActivityOption {
	return func(f *ActivityFixture) {
		f.Participants = append([]string{}, emails...)
	}
}

// Persistence converts the fixture into its persistence representation.
func (f ActivityFixture) Persistence() persistence.Activity {
	return persistence.Activity{
		Name:            f.Name,
		Description:     f.Description,
		Schedule:        f.Schedule,
		MaxParticipants: f.MaxParticipants,
		Participants:    append([]string{}, f.Participants...),
	}
}
