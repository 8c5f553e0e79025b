package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	roundmigrations "github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/repositories/migrations"
	"github.com/Black-And-White-Club/golf-trip/config"
	"github.com/Black-And-White-Club/golf-trip/internal/db/bundb"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"
)

var errNoDSN = errors.New("postgres.dsn, DATABASE_URL or --dsn must be set to run migrations")

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// migrations holds the migrator for the duration of one command.
type migrations struct {
	db       *bun.DB
	migrator *migrate.Migrator
}

func newApp(stdout io.Writer) *cli.App {
	m := &migrations{}

	return &cli.App{
		Name:      "bun",
		Usage:     "manage the trips database schema",
		Writer:    stdout,
		ErrWriter: stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file"},
			&cli.StringFlag{Name: "dsn", Usage: "Postgres DSN, overrides the configuration", EnvVars: []string{"MIGRATIONS_DSN"}},
		},
		Commands: []*cli.Command{
			{
				Name:   "db",
				Usage:  "database migrations",
				Before: m.open,
				After:  m.close,
				Subcommands: []*cli.Command{
					{Name: "init", Usage: "create migration tables", Action: m.init},
					{Name: "migrate", Usage: "apply pending migrations", Action: m.migrate},
					{Name: "rollback", Usage: "roll back the last migration group", Action: m.rollback},
					{Name: "status", Usage: "print migration status", Action: m.status},
					{Name: "create_go", Usage: "create a Go migration", ArgsUsage: "NAME", Action: m.createGo},
				},
			},
		},
	}
}

func (m *migrations) open(c *cli.Context) error {
	dsn := c.String("dsn")
	if dsn == "" {
		cfg, err := config.LoadConfig(c.String("config"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		dsn = cfg.Postgres.DSN
	}
	if dsn == "" {
		return errNoDSN
	}

	db, err := bundb.Open(c.Context, dsn)
	if err != nil {
		return err
	}
	m.db = db
	m.migrator = migrate.NewMigrator(db, roundmigrations.Migrations)
	return nil
}

func (m *migrations) close(*cli.Context) error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}

func (m *migrations) init(c *cli.Context) error {
	return m.migrator.Init(c.Context)
}

func (m *migrations) migrate(c *cli.Context) error {
	if err := m.migrator.Lock(c.Context); err != nil {
		return err
	}
	defer m.migrator.Unlock(c.Context) //nolint:errcheck

	group, err := m.migrator.Migrate(c.Context)
	if err != nil {
		return err
	}
	if group.IsZero() {
		fmt.Fprintln(c.App.Writer, "Trips schema is up to date")
		return nil
	}
	fmt.Fprintf(c.App.Writer, "Migrated to %s\n", group)
	return nil
}

func (m *migrations) rollback(c *cli.Context) error {
	if err := m.migrator.Lock(c.Context); err != nil {
		return err
	}
	defer m.migrator.Unlock(c.Context) //nolint:errcheck

	group, err := m.migrator.Rollback(c.Context)
	if err != nil {
		return err
	}
	if group.IsZero() {
		fmt.Fprintln(c.App.Writer, "Nothing to roll back")
		return nil
	}
	fmt.Fprintf(c.App.Writer, "Rolled back %s\n", group)
	return nil
}

func (m *migrations) status(c *cli.Context) error {
	ms, err := m.migrator.MigrationsWithStatus(c.Context)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "applied: %s\n", ms.Applied())
	fmt.Fprintf(c.App.Writer, "pending: %s\n", ms.Unapplied())
	return nil
}

func (m *migrations) createGo(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("create_go expects a migration NAME")
	}
	name := strings.Join(c.Args().Slice(), "_")
	mf, err := m.migrator.CreateGoMigration(c.Context, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Created migration %s (%s)\n", mf.Name, mf.Path)
	return nil
}
