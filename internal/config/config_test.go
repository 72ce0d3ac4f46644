package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfig, "")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c, err := Load(NewViper())
	require.NoError(t, err)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, ":8080", c.HTTP.Addr)
	assert.Equal(t, "memory", c.Session.Store)
	assert.Equal(t, 30*time.Minute, c.Session.TTL)
	assert.Equal(t, "cmdassist:session:", c.Redis.Prefix)
	assert.Equal(t, 4096, c.Input.MaxSize)
	assert.False(t, c.Narration.Enabled)
	assert.Empty(t, c.Catalog.Path)
}

func TestLoad_FileAndEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "cmdassist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
narration:
  enabled: true
  command: espeak --stdin
session:
  store: redis
  ttl: 5m
redis:
  addr: cache:6379
  db: 2
`), 0o644))
	t.Setenv(EnvConfig, path)
	t.Setenv("CMDASSIST_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("CMDASSIST_REDIS_DB", "3")

	c, err := Load(NewViper())
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.True(t, c.Narration.Enabled)
	assert.Equal(t, "espeak --stdin", c.Narration.Command)
	assert.Equal(t, "redis", c.Session.Store)
	assert.Equal(t, 5*time.Minute, c.Session.TTL)
	assert.Equal(t, "cache:6379", c.Redis.Addr)
	assert.Equal(t, 3, c.Redis.DB, "env wins over file")
	assert.Equal(t, "127.0.0.1:9000", c.HTTP.Addr)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load(NewViper())
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	isolate(t)
	t.Setenv("CMDASSIST_SESSION_STORE", "postgres")
	t.Setenv("CMDASSIST_LOG_LEVEL", "loud")

	_, err := Load(NewViper())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session.store")
	assert.Contains(t, err.Error(), "loud")
}

func TestLoad_SetOverrides(t *testing.T) {
	isolate(t)
	v := NewViper()
	v.Set("catalog.path", "/tmp/catalog.yaml")

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/catalog.yaml", c.Catalog.Path)
}
