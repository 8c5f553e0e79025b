package rounddb

import (
	"context"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
)

// Repository persists trips with their roster and rounds.
// All methods are context-aware for cancellation and timeout propagation.
//
// Error semantics:
//   - ErrNotFound: the trip does not exist (GetTrip, SaveTrip, DeleteTrip)
//   - Other errors: infrastructure failures (connection, query, encoding)
type Repository interface {
	CreateTrip(ctx context.Context, trip *rounddomain.Trip) error
	GetTrip(ctx context.Context, id rounddomain.TripID) (*rounddomain.Trip, error)
	SaveTrip(ctx context.Context, trip *rounddomain.Trip) error
	DeleteTrip(ctx context.Context, id rounddomain.TripID) error
}
