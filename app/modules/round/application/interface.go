package roundservice

import (
	"context"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
)

// Service defines the trip editing operations exposed to transports.
type Service interface {
	// Trips
	CreateTrip(ctx context.Context, name string, roster []string) (*rounddomain.Trip, error)
	GetTrip(ctx context.Context, tripID rounddomain.TripID) (*rounddomain.Trip, error)

	// Roster
	AddPlayer(ctx context.Context, tripID rounddomain.TripID, name string) (*rounddomain.Trip, error)
	RemovePlayer(ctx context.Context, tripID rounddomain.TripID, name string) (*rounddomain.Trip, error)
	RenamePlayer(ctx context.Context, tripID rounddomain.TripID, oldName, newName string) (*rounddomain.Trip, error)

	// Rounds
	CreateRound(ctx context.Context, tripID rounddomain.TripID, req CreateRoundRequest) (*rounddomain.Round, error)
	RemoveRound(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID) error
	ApplyParTemplate(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, totalPar int) (*rounddomain.Round, error)

	// Cells
	SetScore(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, player string, hole int, raw string) (rounddomain.Cell, error)
	SetPar(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, hole int, raw string) (rounddomain.Cell, error)
	SetHandicap(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, player, raw string) (rounddomain.Cell, error)

	// Scorecard files
	ImportScorecard(ctx context.Context, tripID rounddomain.TripID, roundName, fileName string, data []byte) (*rounddomain.Round, error)
	ImportScorecardURL(ctx context.Context, tripID rounddomain.TripID, roundName, rawURL string) (*rounddomain.Round, error)
	ExportScorecard(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID) ([]byte, error)

	// Presentation
	SetViewMode(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, mode ViewMode) error
	OpenRound(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID) error
	Session(ctx context.Context, tripID rounddomain.TripID) (Session, error)

	// Change notifications
	Watch(ctx context.Context, tripID rounddomain.TripID) (<-chan struct{}, func())
}

// CreateRoundRequest describes a new round. Zero Holes and TotalPar fall back
// to the service defaults.
type CreateRoundRequest struct {
	Name     string `json:"name" validate:"max=80"`
	Holes    int    `json:"holes" validate:"omitempty,oneof=9 18"`
	TotalPar int    `json:"total_par" validate:"min=0,max=200"`
}
