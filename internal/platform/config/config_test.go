package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_DefaultValues tests that hardcoded defaults are applied correctly.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, "quote-service", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, DefaultStorageDSN, cfg.Storage.DSN)
	assert.Equal(t, DefaultRetryMaxAttempts, cfg.Resilience.Retry.MaxAttempts)
	assert.Equal(t, DefaultCircuitMaxFailures, cfg.Resilience.CircuitBreaker.MaxFailures)
	assert.Equal(t, DefaultStatsTopSources, cfg.Stats.TopSources)
	assert.Zero(t, cfg.Selection.Seed)

	require.NoError(t, cfg.Validate())
}

// TestLoad_EnvVarOverrides tests that environment variables override defaults.
func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_STORAGE_DRIVER", "postgres")
	t.Setenv("APP_STORAGE_DSN", "postgres://quotes@localhost:5432/quotes")
	t.Setenv("APP_SELECTION_SEED", "42")

	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "postgres://quotes@localhost:5432/quotes", cfg.Storage.DSN)
	assert.Equal(t, uint64(42), cfg.Selection.Seed)
}

// TestLoad_DurationParsing tests that duration strings are parsed correctly.
func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Storage.QueryTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Storage.ConnMaxLifetime)
	assert.Equal(t, 20*time.Millisecond, cfg.Resilience.Retry.InitialInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Resilience.Retry.MaxInterval)
	assert.Equal(t, 30*time.Second, cfg.Resilience.CircuitBreaker.Timeout)
}

// TestLoad_FileLayers tests that the profile file overrides the base file.
func TestLoad_FileLayers(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "base.yaml"), `
app:
  environment: dev
storage:
  dsn: /var/lib/quotes/base.db
  seed_path: configs/seed/quotes.yaml
stats:
  top_sources: 7
`)
	writeFile(t, filepath.Join(dir, "test.yaml"), `
app:
  environment: test
storage:
  dsn: ":memory:"
`)

	cfg, err := LoadFrom(dir, "test")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, ":memory:", cfg.Storage.DSN)
	assert.Equal(t, "configs/seed/quotes.yaml", cfg.Storage.SeedPath)
	assert.Equal(t, 7, cfg.Stats.TopSources)
	assert.Equal(t, DefaultStatsRecent, cfg.Stats.Recent)
}

// TestLoad_InvalidYAML tests that a malformed file is reported.
func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "app: [unterminated")

	_, err := LoadFrom(dir, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading base config")
}

// TestLoad_NonExistentProfile tests that a missing profile file doesn't cause errors.
func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "quote-service", cfg.App.Name)
}

// TestLoad_BoolEnvVar tests that boolean environment variables are parsed correctly.
func TestLoad_BoolEnvVar(t *testing.T) {
	t.Setenv("APP_TELEMETRY_ENABLED", "true")

	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.True(t, cfg.Telemetry.Enabled)
}

// TestLoad_LogFileDefaults tests that log file defaults are set correctly.
func TestLoad_LogFileDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./logs/app.log", cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.True(t, cfg.Log.File.Compress)
}

// TestLoad_TelemetryDefaults tests that telemetry defaults are set correctly.
func TestLoad_TelemetryDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "quote-service", cfg.Telemetry.ServiceName)
	assert.InDelta(t, 1.0, cfg.Telemetry.SamplingRate, 0)
}

// TestDefaults tests that the defaults map contains expected values.
func TestDefaults(t *testing.T) {
	d := defaults()

	assert.Equal(t, "quote-service", d["app.name"])
	assert.Equal(t, "sqlite", d["storage.driver"])
	assert.Equal(t, DefaultServerPort, d["server.port"])
	assert.Equal(t, DefaultRetryMaxAttempts, d["resilience.retry.max_attempts"])
	assert.Equal(t, DefaultRetryMultiplier, d["resilience.retry.multiplier"])
	assert.Equal(t, DefaultStatsRecent, d["stats.recent"])
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
