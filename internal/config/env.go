package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment variables recognized by ApplyEnv.
const (
	EnvAddr           = "NEXUS_ADDR"
	EnvAssetsDir      = "NEXUS_ASSETS_DIR"
	EnvEmbeddedAssets = "NEXUS_EMBEDDED_ASSETS"
	EnvLogLevel       = "NEXUS_LOG_LEVEL"
	EnvLogFormat      = "NEXUS_LOG_FORMAT"
	EnvAccessLog      = "NEXUS_ACCESS_LOG"
	EnvCORSOrigins    = "NEXUS_CORS_ORIGINS"
)

// ApplyEnv overrides cfg with any non-empty variables returned by getenv.
// Setting NEXUS_CORS_ORIGINS also enables CORS.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := getenv(EnvAssetsDir); v != "" {
		cfg.AssetsDir = v
	}
	if v := getenv(EnvEmbeddedAssets); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvEmbeddedAssets, err)
		}
		cfg.EmbeddedAssets = b
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v := getenv(EnvAccessLog); v != "" {
		cfg.AccessLog = strings.ToLower(v)
	}
	if origins := SplitCSV(getenv(EnvCORSOrigins)); len(origins) > 0 {
		cfg.CORSEnabled = true
		cfg.CORSAllowedOrigins = origins
	}
	return nil
}

// SplitCSV splits a comma-separated list, trimming blanks and dropping empty items.
func SplitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
