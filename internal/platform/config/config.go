// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultMaxRequestSize is the default maximum request body size (1MB).
	DefaultMaxRequestSize = 1 << 20

	// DefaultRequestTimeout bounds each /api/v1 request.
	DefaultRequestTimeout = 10 * time.Second

	// DefaultStorageDSN is the SQLite database file used when none is configured.
	DefaultStorageDSN = "./data/quotes.db"

	// DefaultStorageMaxOpenConns is the Postgres pool size.
	DefaultStorageMaxOpenConns = 10

	// DefaultStorageMaxIdleConns is the number of idle Postgres connections kept.
	DefaultStorageMaxIdleConns = 5

	// DefaultRetryMaxAttempts is the default number of attempts for reads.
	DefaultRetryMaxAttempts = 3

	// DefaultRetryMultiplier is the default exponential backoff multiplier.
	DefaultRetryMultiplier = 2.0

	// DefaultRetryJitterFactor is the default jitter percentage (±25%).
	DefaultRetryJitterFactor = 0.25

	// DefaultCircuitMaxFailures is the default failures before the circuit opens.
	DefaultCircuitMaxFailures = 5

	// DefaultCircuitHalfOpenLimit is the default successes to close the circuit.
	DefaultCircuitHalfOpenLimit = 3

	// DefaultStatsTopSources is the number of sources in the summary.
	DefaultStatsTopSources = 5

	// DefaultStatsRecent is the number of recent quotes in the summary.
	DefaultStatsRecent = 5

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28
)

// Config is the root configuration structure.
type Config struct {
	App        AppConfig        `koanf:"app"        validate:"required"`
	Server     ServerConfig     `koanf:"server"     validate:"required"`
	Log        LogConfig        `koanf:"log"        validate:"required"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
	Storage    StorageConfig    `koanf:"storage"    validate:"required"`
	Resilience ResilienceConfig `koanf:"resilience" validate:"required"`
	Selection  SelectionConfig  `koanf:"selection"`
	Stats      StatsConfig      `koanf:"stats"      validate:"required"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=100ms"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// StorageConfig selects and tunes the quote database.
type StorageConfig struct {
	Driver          string        `koanf:"driver"            validate:"required,oneof=sqlite postgres"`
	DSN             string        `koanf:"dsn"               validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns"    validate:"min=0,max=500"`
	MaxIdleConns    int           `koanf:"max_idle_conns"    validate:"min=0,max=500"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"min=0"`
	QueryTimeout    time.Duration `koanf:"query_timeout"     validate:"required,min=10ms"`

	// SeedPath points at a YAML file of quotes loaded into an empty corpus.
	SeedPath string `koanf:"seed_path"`
}

// ResilienceConfig wraps repository calls in retries and a circuit breaker.
type ResilienceConfig struct {
	Retry          RetryConfig          `koanf:"retry"           validate:"required"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker" validate:"required"`
}

// RetryConfig contains retry settings for repository reads.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"     validate:"required,min=1,max=10"`
	InitialInterval time.Duration `koanf:"initial_interval" validate:"required,min=1ms"`
	MaxInterval     time.Duration `koanf:"max_interval"     validate:"required,min=10ms"`
	Multiplier      float64       `koanf:"multiplier"       validate:"required,min=1.1,max=10"`
	JitterFactor    float64       `koanf:"jitter_factor"    validate:"min=0,max=1"`
}

// CircuitBreakerConfig contains circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"    validate:"required,min=1"`
	Timeout       time.Duration `koanf:"timeout"         validate:"required,min=1s"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"required,min=1"`
}

// SelectionConfig tunes the random picker.
type SelectionConfig struct {
	// Seed fixes the generator for reproducible draws. Zero seeds from the clock.
	Seed uint64 `koanf:"seed"`
}

// StatsConfig sizes the summary sections.
type StatsConfig struct {
	TopSources int `koanf:"top_sources" validate:"required,min=1,max=50"`
	Recent     int `koanf:"recent"      validate:"required,min=1,max=50"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "quote-service",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  DefaultRequestTimeout.String(),
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "quote-service",
		"telemetry.sampling_rate": 1.0,

		"storage.driver":            "sqlite",
		"storage.dsn":               DefaultStorageDSN,
		"storage.max_open_conns":    DefaultStorageMaxOpenConns,
		"storage.max_idle_conns":    DefaultStorageMaxIdleConns,
		"storage.conn_max_lifetime": "30m",
		"storage.query_timeout":     "2s",
		"storage.seed_path":         "",

		"resilience.retry.max_attempts":              DefaultRetryMaxAttempts,
		"resilience.retry.initial_interval":          "20ms",
		"resilience.retry.max_interval":              "500ms",
		"resilience.retry.multiplier":                DefaultRetryMultiplier,
		"resilience.retry.jitter_factor":             DefaultRetryJitterFactor,
		"resilience.circuit_breaker.max_failures":    DefaultCircuitMaxFailures,
		"resilience.circuit_breaker.timeout":         "30s",
		"resilience.circuit_breaker.half_open_limit": DefaultCircuitHalfOpenLimit,

		"selection.seed": 0,

		"stats.top_sources": DefaultStatsTopSources,
		"stats.recent":      DefaultStatsRecent,
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	return LoadFrom("configs", profile)
}

// LoadFrom is Load with an explicit configuration directory.
func LoadFrom(dir, profile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := loadFileIfExists(k, dir+"/base.yaml"); err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		if err := loadFileIfExists(k, fmt.Sprintf("%s/%s.yaml", dir, profile)); err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	// APP_STORAGE_DSN becomes storage.dsn. Keys with underscores inside a
	// segment are only reachable through files.
	err := k.Load(env.Provider("APP_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "APP_")),
			"_",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
