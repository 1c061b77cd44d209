package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config source at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("KANBAN_CONFIG", "")
	t.Setenv("KANBAN_ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("KANBAN_THEME_FILE", "")
	t.Setenv("NO_COLOR", "")
	for _, key := range []string{
		"KANBAN_BACKEND", "KANBAN_BACKEND_URL", "KANBAN_DB_PATH", "KANBAN_PERSISTENCE_MODE",
		"KANBAN_SERVER_ADDR", "KANBAN_REDIS_URL", "KANBAN_LOG_LEVEL", "KANBAN_LOG_PATH",
		"KANBAN_SYNC_MAX_INFLIGHT", "KANBAN_SYNC_CALL_TIMEOUT", "KANBAN_CACHE_TTL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "kanban")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Backend.Kind)
	assert.Equal(t, "live", cfg.Persistence.Mode)
	assert.Equal(t, DefaultMaxInFlight, cfg.Sync.MaxInFlight)
	assert.Equal(t, DefaultServerAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultCacheTTL, cfg.Server.CacheTTL)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
	assert.Equal(t, DefaultColorScheme().Accent, cfg.ColorScheme.Accent)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
backend:
  kind: http
  url: http://localhost:9000
persistence:
  mode: simulated
sync:
  max_inflight: 2
  call_timeout: 3s
server:
  cache_ttl: 1m
theme:
  preset: monochrome
  accent: "#123456"
`)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, BackendHTTP, cfg.Backend.Kind)
	assert.Equal(t, "http://localhost:9000", cfg.Backend.URL)
	assert.Equal(t, "simulated", cfg.Persistence.Mode)
	assert.Equal(t, 2, cfg.Sync.MaxInFlight)
	assert.Equal(t, 3*time.Second, cfg.Sync.CallTimeout)
	assert.Equal(t, time.Minute, cfg.Server.CacheTTL)
	// unspecified values use defaults
	assert.Equal(t, DefaultServerAddr, cfg.Server.Addr)
	assert.Equal(t, "#123456", cfg.ColorScheme.Accent)
	assert.Equal(t, MonochromeColorScheme().ColumnBorder, cfg.ColorScheme.ColumnBorder)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "backend:\n  kind: sqlite\nlog:\n  level: info\n")
	t.Setenv("KANBAN_LOG_LEVEL", "debug")
	t.Setenv("KANBAN_DB_PATH", "/tmp/other.db")
	t.Setenv("KANBAN_SYNC_MAX_INFLIGHT", "3")
	t.Setenv("KANBAN_CACHE_TTL", "10s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/other.db", cfg.Backend.DBPath)
	assert.Equal(t, 3, cfg.Sync.MaxInFlight)
	assert.Equal(t, 10*time.Second, cfg.Server.CacheTTL)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("KANBAN_PERSISTENCE_MODE=simulated\n"), 0o644))
	t.Setenv("KANBAN_ENV_FILE", envFile)
	t.Cleanup(func() { _ = os.Unsetenv("KANBAN_PERSISTENCE_MODE") })

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "simulated", cfg.Persistence.Mode)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend", map[string]string{"KANBAN_BACKEND": "postgres"}},
		{"http without url", map[string]string{"KANBAN_BACKEND": "http"}},
		{"unknown mode", map[string]string{"KANBAN_PERSISTENCE_MODE": "offline"}},
		{"bad level", map[string]string{"KANBAN_LOG_LEVEL": "loud"}},
		{"bad inflight", map[string]string{"KANBAN_SYNC_MAX_INFLIGHT": "many"}},
		{"bad ttl", map[string]string{"KANBAN_CACHE_TTL": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "backend: [unclosed")

	_, err := Load()
	assert.Error(t, err)
}

func TestThemeFileLoading(t *testing.T) {
	dir := isolate(t)
	themePath := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte("theme:\n  accent: \"#FF0000\"\n  wip_warning: \"#00FF00\"\n"), 0o644))
	t.Setenv("KANBAN_THEME_FILE", themePath)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)
	assert.Equal(t, "#00FF00", cfg.ColorScheme.WipWarning)
	// other colors still have defaults
	assert.Equal(t, DefaultColorScheme().PriorityUrgent, cfg.ColorScheme.PriorityUrgent)
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)
	cfg := Default()
	cfg.Server.Addr = ":9999"
	cfg.Persistence.Mode = "simulated"

	require.NoError(t, cfg.Save())
	_, err := os.Stat(filepath.Join(dir, "kanban", "config.yaml"))
	require.NoError(t, err)

	cfg2, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg2.Server.Addr)
	assert.Equal(t, "simulated", cfg2.Persistence.Mode)
}

func TestLoad_NoColorSelectsMonochrome(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "theme:\n  accent: \"#abcdef\"\n")
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "monochrome", cfg.ColorScheme.Preset)
	assert.Equal(t, MonochromeColorScheme().ColumnBorder, cfg.ColorScheme.ColumnBorder)
	assert.Equal(t, "#abcdef", cfg.ColorScheme.Accent)
}
