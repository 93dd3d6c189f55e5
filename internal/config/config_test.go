package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
server:
  host: 127.0.0.1
  port: 8080
database:
  host: localhost
  port: 5432
  user: masjidhub
  database: masjidhub
email:
  from_email: noreply@masjidhub.example
  from_name: MasjidHub
session:
  secret: 0123456789abcdef0123456789abcdef
log:
  level: debug
  format: json
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddress())
	assert.Equal(t, "postgres://masjidhub:@localhost:5432/masjidhub?sslmode=disable", cfg.GetDatabaseConnectionString())
	assert.Equal(t, 12*60, cfg.Session.TTLMinutes, "TTL defaults when unset")
	assert.NotEmpty(t, cfg.Scheduler.PurgeExpiredSessions, "schedules default when unset")
}

func TestLoadRejectsShortSecret(t *testing.T) {
	yaml := `
server:
  port: 8080
database:
  host: localhost
  user: u
  database: d
email:
  from_email: a@b.c
session:
  secret: tooshort
`
	_, err := Load(writeConfig(t, yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret")
}

func TestLoadRejectsMissingDatabase(t *testing.T) {
	yaml := `
server:
  port: 8080
email:
  from_email: a@b.c
session:
  secret: 0123456789abcdef0123456789abcdef
`
	_, err := Load(writeConfig(t, yaml))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SESSION_SECRET", "ffffffffffffffffffffffffffffffff")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "ffffffffffffffffffffffffffffffff", cfg.Session.Secret)
	assert.Equal(t, 9090, cfg.Server.Port)
}
