package roundintegrationtests

import (
	"io"
	"log/slog"
	"testing"

	leaderboardservice "github.com/Black-And-White-Club/golf-trip/app/modules/leaderboard/application"
	roundservice "github.com/Black-And-White-Club/golf-trip/app/modules/round/application"
	"github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/parsers"
	rounddb "github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/repositories"
	"go.opentelemetry.io/otel/trace/noop"
)

type TestDeps struct {
	Repo        rounddb.Repository
	Service     *roundservice.RoundService
	Leaderboard *leaderboardservice.LeaderboardService
}

// SetupServices builds the round and leaderboard services over the Postgres
// repository of a freshly reset environment.
func SetupServices(t *testing.T) TestDeps {
	t.Helper()
	env := shared.Get(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("integration")
	repo := rounddb.NewRepository(env.DB)

	return TestDeps{
		Repo: repo,
		Service: roundservice.NewRoundService(
			repo,
			parsers.NewFactory(),
			logger,
			roundservice.NoOpMetrics{},
			tracer,
			roundservice.Defaults{Holes: 18, TotalPar: 72},
		),
		Leaderboard: leaderboardservice.NewLeaderboardService(logger, tracer),
	}
}
