package leaderboardservice

import "errors"

var (
	// ErrRoundNotFound indicates the requested round is not on the trip.
	ErrRoundNotFound = errors.New("round not found")

	// ErrNoTrip indicates a nil trip was passed in.
	ErrNoTrip = errors.New("trip is required")
)
