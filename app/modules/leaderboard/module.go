package leaderboard

import (
	"log/slog"

	leaderboardservice "github.com/Black-And-White-Club/golf-trip/app/modules/leaderboard/application"
	leaderboardhandlers "github.com/Black-And-White-Club/golf-trip/app/modules/leaderboard/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the leaderboard module.
type Module struct {
	LeaderboardService leaderboardservice.Service
	handlers           *leaderboardhandlers.LeaderboardHandlers
	logger             *slog.Logger
}

// NewLeaderboardModule creates a new instance of the Leaderboard module. Trips
// are read through the round module's service.
func NewLeaderboardModule(logger *slog.Logger, tracer trace.Tracer, trips leaderboardhandlers.TripSource) *Module {
	logger.Info("leaderboard.NewLeaderboardModule called")

	service := leaderboardservice.NewLeaderboardService(logger, tracer)
	return &Module{
		LeaderboardService: service,
		handlers:           leaderboardhandlers.NewLeaderboardHandlers(trips, service, logger, tracer),
		logger:             logger,
	}
}

// Routes registers the standings endpoints.
func (m *Module) Routes(r chi.Router) {
	m.handlers.Routes(r)
}
