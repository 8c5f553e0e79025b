package rounddomain

import "github.com/google/uuid"

// TripID identifies a trip.
type TripID string

// NewTripID returns a fresh random TripID.
func NewTripID() TripID {
	return TripID(uuid.NewString())
}

// ParseTripID validates s as a TripID.
func ParseTripID(s string) (TripID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return TripID(id.String()), nil
}

func (id TripID) String() string { return string(id) }

// Trip is the scoring view of a golf trip: its roster and rounds in creation
// order.
type Trip struct {
	ID     TripID   `json:"id"`
	Name   string   `json:"name"`
	Roster Roster   `json:"roster"`
	Rounds []*Round `json:"rounds"`
}

// Round returns the round with id, or nil.
func (t *Trip) Round(id RoundID) *Round {
	for _, r := range t.Rounds {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// Repair normalises the roster and every round. It reports whether anything
// changed.
func (t *Trip) Repair() bool {
	roster := NormalizeRoster(t.Roster)
	changed := len(roster) != len(t.Roster)
	t.Roster = roster

	rounds := t.Rounds[:0]
	for _, r := range t.Rounds {
		if r == nil {
			changed = true
			continue
		}
		if Repair(r, t.Roster) {
			changed = true
		}
		rounds = append(rounds, r)
	}
	t.Rounds = rounds
	return changed
}

// Clone returns a deep copy of the trip.
func (t *Trip) Clone() *Trip {
	if t == nil {
		return nil
	}
	out := &Trip{ID: t.ID, Name: t.Name, Roster: append(Roster(nil), t.Roster...)}
	for _, r := range t.Rounds {
		out.Rounds = append(out.Rounds, r.Clone())
	}
	return out
}
