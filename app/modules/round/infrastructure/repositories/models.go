package rounddb

import (
	"time"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	"github.com/uptrace/bun"
)

// Trip is the persisted form of a trip. Roster and rounds are stored as JSON
// documents and repaired on load by the service.
type Trip struct {
	bun.BaseModel `bun:"table:trips,alias:t"`

	ID        string               `bun:"id,pk,type:uuid"`
	Name      string               `bun:"name,notnull"`
	Roster    []string             `bun:"roster,type:jsonb,notnull"`
	Rounds    []*rounddomain.Round `bun:"rounds,type:jsonb,notnull"`
	CreatedAt time.Time            `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time            `bun:",nullzero,notnull,default:current_timestamp"`
}

func toModel(trip *rounddomain.Trip) *Trip {
	roster := []string(trip.Roster)
	if roster == nil {
		roster = []string{}
	}
	rounds := trip.Rounds
	if rounds == nil {
		rounds = []*rounddomain.Round{}
	}
	return &Trip{
		ID:     trip.ID.String(),
		Name:   trip.Name,
		Roster: roster,
		Rounds: rounds,
	}
}

func (t *Trip) toDomain() *rounddomain.Trip {
	return &rounddomain.Trip{
		ID:     rounddomain.TripID(t.ID),
		Name:   t.Name,
		Roster: rounddomain.Roster(t.Roster),
		Rounds: t.Rounds,
	}
}
