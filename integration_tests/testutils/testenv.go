package testutils

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"testing"
	"time"

	"github.com/Black-And-White-Club/golf-trip/config"
	"github.com/Black-And-White-Club/golf-trip/integration_tests/containers"
	"github.com/Black-And-White-Club/golf-trip/internal/db/bundb"
	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
)

// TestEnvironment holds the containers and clients shared by an integration
// test package.
type TestEnvironment struct {
	Ctx            context.Context
	CancelContext  context.CancelFunc
	PgContainer    *postgres.PostgresContainer
	RedisContainer testcontainers.Container
	DB             *bun.DB
	Redis          *redis.Client
	Config         *config.Config
}

// NewTestEnvironment starts Postgres and Redis, migrates the schema and
// connects to both.
func NewTestEnvironment(t *testing.T) (*TestEnvironment, error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	env := &TestEnvironment{Ctx: ctx, CancelContext: cancel}

	if err := env.setupContainers(ctx); err != nil {
		cancel()
		return nil, err
	}
	return env, nil
}

func (env *TestEnvironment) setupContainers(ctx context.Context) error {
	pgContainer, pgConnStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		return fmt.Errorf("failed to setup postgres container: %w", err)
	}
	env.PgContainer = pgContainer

	redisContainer, redisAddr, err := containers.SetupRedisContainer(ctx)
	if err != nil {
		cleanupContainers(ctx, pgContainer, nil)
		return fmt.Errorf("failed to setup redis container: %w", err)
	}
	env.RedisContainer = redisContainer

	db, err := bundb.Open(ctx, pgConnStr)
	if err != nil {
		cleanupContainers(ctx, pgContainer, redisContainer)
		return fmt.Errorf("failed to open database: %w", err)
	}
	env.DB = db

	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := bundb.Migrate(ctx, db, discardLogger); err != nil {
		db.Close()
		cleanupContainers(ctx, pgContainer, redisContainer)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		db.Close()
		cleanupContainers(ctx, pgContainer, redisContainer)
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	env.Redis = client

	env.Config = &config.Config{
		Postgres: config.PostgresConfig{DSN: pgConnStr},
		Redis:    config.RedisConfig{Addr: redisAddr},
	}
	return nil
}

// Reset removes every stored trip from both stores.
func (env *TestEnvironment) Reset(ctx context.Context) error {
	if _, err := env.DB.NewTruncateTable().Table("trips").Exec(ctx); err != nil {
		return fmt.Errorf("failed to truncate trips: %w", err)
	}
	if err := env.Redis.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("failed to flush redis: %w", err)
	}
	return nil
}

// Cleanup tears down all resources created for testing.
func (env *TestEnvironment) Cleanup() {
	log.Println("Cleaning up test environment...")
	if env.CancelContext != nil {
		env.CancelContext()
	}
	if env.Redis != nil {
		if err := env.Redis.Close(); err != nil {
			log.Printf("Error closing redis client: %v", err)
		}
	}
	if env.DB != nil {
		if err := env.DB.Close(); err != nil {
			log.Printf("Error closing DB: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	cleanupContainers(ctx, env.PgContainer, env.RedisContainer)
	log.Println("Cleanup complete.")
}

func cleanupContainers(ctx context.Context, pg *postgres.PostgresContainer, rc testcontainers.Container) {
	if pg != nil {
		if err := pg.Terminate(ctx); err != nil {
			log.Printf("Error terminating Postgres container: %v", err)
		}
	}
	if rc != nil {
		if err := rc.Terminate(ctx); err != nil {
			log.Printf("Error terminating Redis container: %v", err)
		}
	}
}
