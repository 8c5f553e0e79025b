package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	rounddb "github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-trip/config"
	"github.com/Black-And-White-Club/golf-trip/internal/db/bundb"
	"github.com/Black-And-White-Club/golf-trip/internal/modules"
	"github.com/Black-And-White-Club/golf-trip/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "golf-trip"

// App wires configuration, storage, services and the HTTP router.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Modules  *modules.ModuleRegistry

	db             *bun.DB
	redis          *redis.Client
	tracerProvider *sdktrace.TracerProvider
	tracer         trace.Tracer
	httpMetrics    *observability.HTTPMetrics
}

// NewApp initializes the application with the necessary services and
// configuration. With no Postgres DSN, trips are kept in memory.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	app := &App{
		Config:         cfg,
		Logger:         logger,
		Registry:       observability.NewRegistry(),
		tracerProvider: sdktrace.NewTracerProvider(),
	}
	app.tracer = app.tracerProvider.Tracer(tracerName)
	app.httpMetrics = observability.NewHTTPMetrics(app.Registry)

	repo, err := app.openRepository(ctx)
	if err != nil {
		return nil, err
	}

	app.Modules = modules.NewModuleRegistry(cfg, logger, app.tracer, observability.NewRoundMetrics(app.Registry), repo)
	return app, nil
}

func (app *App) openRepository(ctx context.Context) (rounddb.Repository, error) {
	if app.Config.Postgres.DSN == "" {
		if app.Config.Redis.Addr != "" {
			return app.openRedis(ctx)
		}
		app.Logger.WarnContext(ctx, "No database configured, trips are kept in memory")
		return rounddb.NewMemoryRepository(), nil
	}

	db, err := bundb.Open(ctx, app.Config.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := bundb.Migrate(ctx, db, app.Logger); err != nil {
		_ = db.Close()
		return nil, err
	}
	app.db = db
	return rounddb.NewRepository(db), nil
}

func (app *App) openRedis(ctx context.Context) (rounddb.Repository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     app.Config.Redis.Addr,
		Password: app.Config.Redis.Password,
		DB:       app.Config.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	app.redis = client
	app.Logger.InfoContext(ctx, "Trips stored in redis", slog.String("addr", app.Config.Redis.Addr))
	return rounddb.NewRedisRepository(client, app.Config.Redis.TripTTL), nil
}

// Handler returns the root HTTP handler.
func (app *App) Handler() http.Handler {
	return app.Router()
}

// Close releases the trip store and flushes traces.
func (app *App) Close(ctx context.Context) error {
	var firstErr error
	if err := app.tracerProvider.Shutdown(ctx); err != nil {
		firstErr = err
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if app.redis != nil {
		if err := app.redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
