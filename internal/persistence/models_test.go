package persistence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mergington/activities/internal/persistence"
	"github.com/mergington/activities/internal/testfixtures"
)

func TestActivity_Clone(t *testing.T) {
	t.Parallel()

	original := testfixtures.NewActivityFixture(
		testfixtures.WithActivityName("Chess Club"),
		testfixtures.WithParticipants("michael@mergington.edu", "daniel@mergington.edu"),
	).Persistence()

	clone := original.Clone()
	assert.Equal(t, original, clone)

	clone.Participants[0] = "changed@mergington.edu"
	clone.Participants = append(clone.Participants, "extra@mergington.edu")
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, original.Participants)

	empty := persistence.Activity{Name: "Empty"}.Clone()
	assert.NotNil(t, empty.Participants)
	assert.Empty(t, empty.Participants)
}

func TestActivity_HasParticipant(t *testing.T) {
	t.Parallel()

	activity := testfixtures.NewActivityFixture(testfixtures.WithParticipants("a@mergington.edu")).Persistence()

	assert.True(t, activity.HasParticipant("a@mergington.edu"))
	assert.False(t, activity.HasParticipant("A@mergington.edu"))
	assert.False(t, activity.HasParticipant(""))
}
