package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrationsRequireDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MIGRATIONS_DSN", "")

	var out bytes.Buffer
	err := newApp(&out).Run([]string{"bun", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "db", "status"})
	require.ErrorIs(t, err, errNoDSN)
}

func TestMigrationsRejectBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  default_holes: 12\n"), 0o600))

	var out bytes.Buffer
	err := newApp(&out).Run([]string{"bun", "--config", path, "db", "status"})
	require.ErrorContains(t, err, "failed to load config")
}
