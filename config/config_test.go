package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("EVENTS_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("IDENTITY_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, []string{"Admin"}, cfg.Security.AuthorizedRoles)
	assert.False(t, cfg.Security.ProtectAll)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
database:
  driver: postgres
  dsn: host=localhost dbname=events
identity:
  url: http://identity:8082
security:
  authorized_roles: ["Admin", "Operator"]
  protect_all: true
`), 0o600))

	t.Setenv("EVENTS_CONFIG", path)
	t.Setenv("DATABASE_DSN", "host=prod dbname=events")
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("IDENTITY_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=prod dbname=events", cfg.Database.DSN, "env wins over file")
	assert.Equal(t, "http://identity:8082", cfg.Identity.URL)
	assert.Equal(t, []string{"Admin", "Operator"}, cfg.Security.AuthorizedRoles)
	assert.True(t, cfg.Security.ProtectAll)
}
