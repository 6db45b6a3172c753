package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TASKBOARD_AUTH_JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "taskboard.db", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.True(t, cfg.Auth.Enabled)
	require.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, 3, cfg.Views.MonthPreview)
	require.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taskboard.yaml")
	err := os.WriteFile(path, []byte(`
server:
  port: 9090
db:
  path: /var/lib/taskboard/data.db
log:
  level: debug
auth:
  jwt_secret: from-file
  token_ttl: 2h
views:
  month_preview: 5
`), 0o600)
	require.NoError(t, err)

	t.Setenv("TASKBOARD_CONFIG_PATH", path)
	t.Setenv("TASKBOARD_SERVER_PORT", "7070")
	t.Setenv("TASKBOARD_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("TASKBOARD_REDIS_INFLIGHT_TTL", "45s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Server.Port, "env overrides file")
	require.Equal(t, "/var/lib/taskboard/data.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "from-file", cfg.Auth.JWTSecret)
	require.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	require.Equal(t, 45*time.Second, cfg.Redis.InflightTTL)
	require.Equal(t, 5, cfg.Views.MonthPreview)
	require.Equal(t, "text", cfg.Log.Format, "unset values keep defaults")
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("TASKBOARD_AUTH_JWT_SECRET", "secret")
	t.Setenv("TASKBOARD_SERVER_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("TASKBOARD_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.ErrorContains(t, cfg.Validate(), "jwt_secret")

	cfg.Auth.Enabled = false
	require.NoError(t, cfg.Validate())

	cfg.Server.Port = 0
	cfg.Log.Level = "loud"
	cfg.Views.MonthPreview = 0
	err := cfg.Validate()
	require.ErrorContains(t, err, "server.port")
	require.ErrorContains(t, err, "log.level")
	require.ErrorContains(t, err, "month_preview")
}
