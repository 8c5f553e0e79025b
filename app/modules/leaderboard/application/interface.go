package leaderboardservice

import (
	"context"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
)

// Service derives leaderboards from a trip. It never mutates the trip.
type Service interface {
	Leaderboard(ctx context.Context, trip *rounddomain.Trip, roundID rounddomain.RoundID) (*View, error)
	Snapshot(ctx context.Context, trip *rounddomain.Trip, roundID rounddomain.RoundID) (string, error)
	Chart(ctx context.Context, trip *rounddomain.Trip, roundID rounddomain.RoundID) ([]byte, error)
	Standings(ctx context.Context, trip *rounddomain.Trip) (*StandingsView, error)
}
