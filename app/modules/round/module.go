package round

import (
	"log/slog"

	roundservice "github.com/Black-And-White-Club/golf-trip/app/modules/round/application"
	roundhandlers "github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/handlers"
	"github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/parsers"
	rounddb "github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-trip/config"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the round module.
type Module struct {
	RoundService roundservice.Service
	handlers     *roundhandlers.RoundHandlers
	logger       *slog.Logger
	config       *config.Config
}

// NewRoundModule creates a new instance of the Round module.
func NewRoundModule(cfg *config.Config, logger *slog.Logger, tracer trace.Tracer, metrics roundservice.Metrics, repo rounddb.Repository) *Module {
	logger.Info("round.NewRoundModule called")

	roundService := roundservice.NewRoundService(
		repo,
		parsers.NewFactory(),
		logger,
		metrics,
		tracer,
		roundservice.Defaults{Holes: cfg.Scoring.DefaultHoles, TotalPar: cfg.Scoring.DefaultPar},
	)
	roundService.EnableURLImport(roundservice.URLImport{AllowedHosts: cfg.Import.AllowedHosts})

	return &Module{
		RoundService: roundService,
		handlers:     roundhandlers.NewRoundHandlers(roundService, logger, tracer),
		logger:       logger,
		config:       cfg,
	}
}

// Routes registers the trip editing endpoints.
func (m *Module) Routes(r chi.Router) {
	m.handlers.Routes(r)
}
