package modules

import (
	"log/slog"

	"github.com/Black-And-White-Club/golf-trip/app/modules/leaderboard"
	"github.com/Black-And-White-Club/golf-trip/app/modules/round"
	roundservice "github.com/Black-And-White-Club/golf-trip/app/modules/round/application"
	rounddb "github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-trip/config"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// ModuleRegistry stores and manages application modules.
type ModuleRegistry struct {
	RoundModule       *round.Module
	LeaderboardModule *leaderboard.Module
}

// NewModuleRegistry initializes and returns a new ModuleRegistry.
func NewModuleRegistry(cfg *config.Config, logger *slog.Logger, tracer trace.Tracer, metrics roundservice.Metrics, repo rounddb.Repository) *ModuleRegistry {
	roundModule := round.NewRoundModule(cfg, logger, tracer, metrics, repo)
	leaderboardModule := leaderboard.NewLeaderboardModule(logger, tracer, roundModule.RoundService)

	return &ModuleRegistry{
		RoundModule:       roundModule,
		LeaderboardModule: leaderboardModule,
	}
}

// Modules lists the registered modules in mount order.
func (m *ModuleRegistry) Modules() []Module {
	return []Module{m.RoundModule, m.LeaderboardModule}
}

// Routes mounts every module on r. All modules share the trips prefix, so
// their routes are registered on a single subrouter.
func (m *ModuleRegistry) Routes(r chi.Router) {
	for _, mod := range m.Modules() {
		mod.Routes(r)
	}
}
