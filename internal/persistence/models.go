package persistence

// Activity represents an extracurricular activity together with its roster.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Clone returns a deep copy so callers never share the roster slice with the store.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// HasParticipant reports whether email is already on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, existing := range a.Participants {
		if existing == email {
			return true
		}
	}
	return false
}
