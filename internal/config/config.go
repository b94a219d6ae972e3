// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Valkey (Redis-compatible cache) backing the L2 preview cache.
	// The cache tier is optional: it stays disabled while ValkeyHost is empty.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// PreviewTTL is how long rendered previews stay in the L2 cache.
	PreviewTTL time.Duration

	// MaxUploadBytes caps the size of an uploaded document file.
	MaxUploadBytes int64
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode or fail to parse.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
	}

	ttl, err := time.ParseDuration(envOrDefault("PREVIEW_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("parse PREVIEW_CACHE_TTL: %w", err)
	}
	cfg.PreviewTTL = ttl

	maxUpload, err := strconv.ParseInt(envOrDefault("MAX_UPLOAD_BYTES", "1048576"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse MAX_UPLOAD_BYTES: %w", err)
	}
	if maxUpload <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", maxUpload)
	}
	cfg.MaxUploadBytes = maxUpload

	if cfg.Env == "production" {
		if cfg.ValkeyHost != "" && cfg.ValkeyPassword == "" {
			return nil, fmt.Errorf("VALKEY_PASSWORD must be set in production when Valkey is enabled")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ValkeyAddr returns the Valkey connection address (host:port).
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.ValkeyHost, c.ValkeyPort)
}

// ValkeyEnabled reports whether the optional L2 cache tier is configured.
func (c *Config) ValkeyEnabled() bool {
	return c.ValkeyHost != ""
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
