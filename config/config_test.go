package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 50, cfg.Engine.MaxTermYears)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  read_timeout: 5s
redis:
  enabled: true
  addr: cache:6379
  db: 2
cache:
  ttl: 30s
rate_limit:
  capacity: 5
  window: 2m
engine:
  max_term_years: 40
  max_simulation_years: 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 5, cfg.RateLimit.Capacity)
	assert.Equal(t, 2*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 40, cfg.Engine.MaxTermYears)
	assert.Equal(t, 30, cfg.Engine.MaxSimulationYears)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("CACHE_TTL_SECONDS", "120")
	t.Setenv("RATE_LIMIT_CAPACITY", "3")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "10")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6380", cfg.Redis.Addr)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 3, cfg.RateLimit.Capacity)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.Window)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [unterminated")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.RateLimit.Capacity = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Redis.Enabled = true
	cfg.Redis.Addr = ""
	assert.Error(t, cfg.Validate())

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}
