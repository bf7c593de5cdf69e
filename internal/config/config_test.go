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
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  path: `+filepath.Join(t.TempDir(), "test.db")+`
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 50, cfg.Server.RateLimitRPS)

	l := cfg.Layout()
	assert.Equal(t, 120, l.SlotDuration)
	assert.Equal(t, 5, l.Buffer)
	assert.Equal(t, 18, l.DefaultStart)
	assert.Equal(t, 22, l.DefaultEnd)
	assert.Equal(t, time.Duration(0), cfg.CacheTTL())
}

func TestLoadOverridesAndEnvExpansion(t *testing.T) {
	t.Setenv("STOLIK_REDIS_ADDR", "localhost:6390")
	path := writeConfig(t, `
server:
  port: 9000
database:
  path: `+filepath.Join(t.TempDir(), "test.db")+`
redis:
  address: ${STOLIK_REDIS_ADDR}
timeline:
  slot_duration_minutes: 90
  buffer_minutes: 10
  cache_ttl_seconds: 300
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "localhost:6390", cfg.Redis.Address)
	assert.Equal(t, 90, cfg.Layout().SlotDuration)
	assert.Equal(t, 10, cfg.Layout().Buffer)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
