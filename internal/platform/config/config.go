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
	DefaultServerPort     = 8080
	DefaultMaxRequestSize = 1 << 20

	DefaultLogFileMaxSizeMB  = 100
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28

	DefaultMaxBatchSize     = 100
	DefaultBatchConcurrency = 8
	DefaultVerifyTolerance  = 1e-9

	DefaultLaminarLimit   = 2300.0
	DefaultTurbulentLimit = 4000.0
)

// Config is the root configuration structure.
type Config struct {
	App        AppConfig        `koanf:"app"        validate:"required"`
	Server     ServerConfig     `koanf:"server"     validate:"required"`
	Log        LogConfig        `koanf:"log"        validate:"required"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
	Conversion ConversionConfig `koanf:"conversion" validate:"required"`
	Sizing     SizingConfig     `koanf:"sizing"     validate:"required"`
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
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,hostname_port"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// ConversionConfig contains unit conversion settings.
type ConversionConfig struct {
	// DisplaySystem is used when a request names no target system.
	DisplaySystem    string  `koanf:"display_system"    validate:"required,unit_system"`
	MaxBatchSize     int     `koanf:"max_batch_size"    validate:"required,min=1,max=10000"`
	BatchConcurrency int     `koanf:"batch_concurrency" validate:"required,min=1,max=256"`
	VerifyTolerance  float64 `koanf:"verify_tolerance"  validate:"gt=0,lt=1"`
}

// SizingConfig contains flow regime thresholds (Reynolds numbers).
type SizingConfig struct {
	LaminarLimit   float64 `koanf:"laminar_limit"   validate:"gt=0"`
	TurbulentLimit float64 `koanf:"turbulent_limit" validate:"gtefield=LaminarLimit"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "pipe-sizing",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  "5s",
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
		"telemetry.service_name":  "pipe-sizing",
		"telemetry.sampling_rate": 1.0,

		"conversion.display_system":    "metric",
		"conversion.max_batch_size":    DefaultMaxBatchSize,
		"conversion.batch_concurrency": DefaultBatchConcurrency,
		"conversion.verify_tolerance":  DefaultVerifyTolerance,

		"sizing.laminar_limit":   DefaultLaminarLimit,
		"sizing.turbulent_limit": DefaultTurbulentLimit,
	}
}

// envKeys maps APP_-stripped, upper-cased env names onto config keys, so that
// APP_CONVERSION_MAX_BATCH_SIZE reaches conversion.max_batch_size.
func envKeys() map[string]string {
	keys := make(map[string]string)
	for k := range defaults() {
		keys[strings.ToUpper(strings.ReplaceAll(k, ".", "_"))] = k
	}

	return keys
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	return LoadFrom("configs", profile)
}

// LoadFrom is Load with an explicit config directory.
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

	known := envKeys()

	err := k.Load(env.Provider("APP_", ".", func(s string) string {
		name := strings.TrimPrefix(s, "APP_")
		if key, ok := known[name]; ok {
			return key
		}

		return strings.ReplaceAll(strings.ToLower(name), "_", ".")
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
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
