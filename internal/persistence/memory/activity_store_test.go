package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/persistence"
)

func sampleSeed() []persistence.Activity {
	return []persistence.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Competitive basketball team for all skill levels",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu"},
		},
	}
}

func activityNamed(t *testing.T, store *ActivityStore, name string) persistence.Activity {
	t.Helper()

	activities, err := store.ListActivities(context.Background())
	require.NoError(t, err)
	for _, activity := range activities {
		if activity.Name == name {
			return activity
		}
	}
	t.Fatalf("activity %q not listed", name)
	return persistence.Activity{}
}

func TestNewActivityStore(t *testing.T) {
	t.Parallel()

	t.Run("rejects duplicate activity names", func(t *testing.T) {
		t.Parallel()

		seed := sampleSeed()
		seed = append(seed, seed[0])

		_, err := NewActivityStore(seed)
		require.ErrorIs(t, err, persistence.ErrDuplicate)
	})

	t.Run("rejects duplicate participants", func(t *testing.T) {
		t.Parallel()

		seed := sampleSeed()
		seed[1].Participants = []string{"james@mergington.edu", "james@mergington.edu"}

		_, err := NewActivityStore(seed)
		require.ErrorIs(t, err, persistence.ErrDuplicate)
	})

	t.Run("rejects non-positive capacity and blank names", func(t *testing.T) {
		t.Parallel()

		seed := sampleSeed()
		seed[0].MaxParticipants = 0
		_, err := NewActivityStore(seed)
		require.ErrorIs(t, err, persistence.ErrConstraintViolation)

		seed = sampleSeed()
		seed[1].Name = "  "
		_, err = NewActivityStore(seed)
		require.ErrorIs(t, err, persistence.ErrConstraintViolation)
	})

	t.Run("does not alias the seed slices", func(t *testing.T) {
		t.Parallel()

		seed := sampleSeed()
		store, err := NewActivityStore(seed)
		require.NoError(t, err)

		seed[0].Participants[0] = "mutated@mergington.edu"

		chess := activityNamed(t, store, "Chess Club")
		assert.Equal(t, "michael@mergington.edu", chess.Participants[0])
	})
}

func TestActivityStore_ListActivities(t *testing.T) {
	t.Parallel()

	store, err := NewActivityStore(sampleSeed())
	require.NoError(t, err)

	activities, err := store.ListActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "Chess Club", activities[0].Name)
	assert.Equal(t, "Basketball Team", activities[1].Name)

	activities[0].Participants[0] = "changed@mergington.edu"
	again, err := store.ListActivities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "michael@mergington.edu", again[0].Participants[0])
}

func TestActivityStore_AddParticipant(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("appends to the end of the roster", func(t *testing.T) {
		t.Parallel()

		store, err := NewActivityStore(sampleSeed())
		require.NoError(t, err)

		updated, err := store.AddParticipant(ctx, "Basketball Team", "newstudent@mergington.edu")
		require.NoError(t, err)
		assert.Equal(t, []string{"james@mergington.edu", "newstudent@mergington.edu"}, updated.Participants)
	})

	t.Run("reports duplicates and unknown activities", func(t *testing.T) {
		t.Parallel()

		store, err := NewActivityStore(sampleSeed())
		require.NoError(t, err)

		_, err = store.AddParticipant(ctx, "Chess Club", "michael@mergington.edu")
		require.ErrorIs(t, err, persistence.ErrDuplicate)

		_, err = store.AddParticipant(ctx, "Nonexistent Club", "student@mergington.edu")
		require.ErrorIs(t, err, persistence.ErrNotFound)
	})

	t.Run("ignores capacity", func(t *testing.T) {
		t.Parallel()

		seed := sampleSeed()
		seed[1].MaxParticipants = 1
		store, err := NewActivityStore(seed)
		require.NoError(t, err)

		updated, err := store.AddParticipant(ctx, "Basketball Team", "extra@mergington.edu")
		require.NoError(t, err)
		assert.Len(t, updated.Participants, 2)
	})

	t.Run("serializes concurrent signups of the same email", func(t *testing.T) {
		t.Parallel()

		store, err := NewActivityStore(sampleSeed())
		require.NoError(t, err)

		const workers = 32
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := store.AddParticipant(ctx, "Chess Club", "racer@mergington.edu"); err == nil {
					mu.Lock()
					successes++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		chess := activityNamed(t, store, "Chess Club")
		assert.Len(t, chess.Participants, 3)
	})

	t.Run("keeps every distinct concurrent signup", func(t *testing.T) {
		t.Parallel()

		store, err := NewActivityStore(sampleSeed())
		require.NoError(t, err)

		const workers = 20
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := store.AddParticipant(ctx, "Basketball Team", fmt.Sprintf("student%d@mergington.edu", i))
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		team := activityNamed(t, store, "Basketball Team")
		assert.Len(t, team.Participants, workers+1)
	})
}

func TestActivityStore_RemoveParticipant(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("removes and keeps order of the rest", func(t *testing.T) {
		t.Parallel()

		store, err := NewActivityStore(sampleSeed())
		require.NoError(t, err)

		updated, err := store.RemoveParticipant(ctx, "Chess Club", "michael@mergington.edu")
		require.NoError(t, err)
		assert.Equal(t, []string{"daniel@mergington.edu"}, updated.Participants)
	})

	t.Run("reports missing members and unknown activities", func(t *testing.T) {
		t.Parallel()

		store, err := NewActivityStore(sampleSeed())
		require.NoError(t, err)

		_, err = store.RemoveParticipant(ctx, "Chess Club", "nonexistent@mergington.edu")
		require.ErrorIs(t, err, persistence.ErrMissing)

		_, err = store.RemoveParticipant(ctx, "Nonexistent Club", "michael@mergington.edu")
		require.ErrorIs(t, err, persistence.ErrNotFound)
	})

	t.Run("round trip restores the roster", func(t *testing.T) {
		t.Parallel()

		store, err := NewActivityStore(sampleSeed())
		require.NoError(t, err)

		before := activityNamed(t, store, "Chess Club")

		_, err = store.AddParticipant(ctx, "Chess Club", "roundtrip@mergington.edu")
		require.NoError(t, err)
		_, err = store.RemoveParticipant(ctx, "Chess Club", "roundtrip@mergington.edu")
		require.NoError(t, err)

		after := activityNamed(t, store, "Chess Club")
		assert.ElementsMatch(t, before.Participants, after.Participants)
	})
}

func TestActivityStore_Reset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := NewActivityStore(sampleSeed())
	require.NoError(t, err)

	_, err = store.AddParticipant(ctx, "Chess Club", "temp@mergington.edu")
	require.NoError(t, err)

	require.NoError(t, store.Reset(sampleSeed()))
	chess := activityNamed(t, store, "Chess Club")
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)

	bad := sampleSeed()
	bad[0].MaxParticipants = -1
	require.Error(t, store.Reset(bad))

	activities, err := store.ListActivities(ctx)
	require.NoError(t, err)
	assert.Len(t, activities, 2)
}

func TestActivityStore_CanceledContext(t *testing.T) {
	t.Parallel()

	store, err := NewActivityStore(sampleSeed())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.AddParticipant(ctx, "Chess Club", "late@mergington.edu")
	require.True(t, errors.Is(err, context.Canceled))
}
