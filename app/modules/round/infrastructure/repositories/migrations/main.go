package roundmigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the trip schema migrations.
var Migrations = migrate.NewMigrations()
