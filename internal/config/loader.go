package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
type Config struct {
	Addr           string `json:"addr" yaml:"addr" toml:"addr" validate:"required"`
	AssetsDir      string `json:"assets_dir" yaml:"assets_dir" toml:"assets_dir" validate:"required_unless=EmbeddedAssets true"`
	EmbeddedAssets bool   `json:"embedded_assets" yaml:"embedded_assets" toml:"embedded_assets"`

	LogLevel  string `json:"log_level" yaml:"log_level" toml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `json:"log_format" yaml:"log_format" toml:"log_format" validate:"oneof=json console"`
	// AccessLog is the default per-request log level: off|error|info|debug.
	AccessLog string `json:"access_log" yaml:"access_log" toml:"access_log" validate:"oneof=off error info debug"`

	MetricsEnabled bool `json:"metrics_enabled" yaml:"metrics_enabled" toml:"metrics_enabled"`

	CORSEnabled        bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins" toml:"cors_allowed_origins" validate:"required_if=CORSEnabled true"`
	CORSAllowedMethods []string `json:"cors_allowed_methods" yaml:"cors_allowed_methods" toml:"cors_allowed_methods"`
	CORSAllowedHeaders []string `json:"cors_allowed_headers" yaml:"cors_allowed_headers" toml:"cors_allowed_headers"`

	ReadTimeoutSeconds     int `json:"read_timeout_seconds" yaml:"read_timeout_seconds" toml:"read_timeout_seconds" validate:"gte=0"`
	WriteTimeoutSeconds    int `json:"write_timeout_seconds" yaml:"write_timeout_seconds" toml:"write_timeout_seconds" validate:"gte=0"`
	IdleTimeoutSeconds     int `json:"idle_timeout_seconds" yaml:"idle_timeout_seconds" toml:"idle_timeout_seconds" validate:"gte=0"`
	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds" toml:"shutdown_timeout_seconds" validate:"gte=0"`
}

// Defaults returns the configuration used when nothing else is specified.
func Defaults() Config {
	return Config{
		Addr:                   ":5000",
		AssetsDir:              "web/static",
		LogLevel:               "info",
		LogFormat:              "json",
		AccessLog:              "info",
		MetricsEnabled:         true,
		CORSAllowedMethods:     []string{"GET", "HEAD", "OPTIONS"},
		CORSAllowedHeaders:     []string{"Accept", "Content-Type"},
		ReadTimeoutSeconds:     10,
		WriteTimeoutSeconds:    30,
		IdleTimeoutSeconds:     60,
		ShutdownTimeoutSeconds: 5,
	}
}

// Load reads a configuration file based on its extension and overlays it on
// Defaults. Keys absent from the file keep their default values.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
