// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"strings"
	"testing"
	"time"
)

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	// Set every variable Load reads to empty so envOrDefault falls through
	// to the defaults regardless of the surrounding environment.
	envVars := []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
		"PREVIEW_CACHE_TTL", "MAX_UPLOAD_BYTES",
	}
	for _, key := range envVars {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "8080")
	check("Env", cfg.Env, "development")
	check("ValkeyHost", cfg.ValkeyHost, "")
	check("ValkeyPort", cfg.ValkeyPort, "6379")
	check("ValkeyPassword", cfg.ValkeyPassword, "")

	if cfg.PreviewTTL != 5*time.Minute {
		t.Errorf("PreviewTTL = %v, want %v", cfg.PreviewTTL, 5*time.Minute)
	}
	if cfg.MaxUploadBytes != 1048576 {
		t.Errorf("MaxUploadBytes = %d, want %d", cfg.MaxUploadBytes, 1048576)
	}
	if cfg.ValkeyEnabled() {
		t.Error("ValkeyEnabled() = true with no VALKEY_HOST set")
	}
}

// TestLoad_EnvOverrides verifies that every environment variable properly
// overrides the default value.
func TestLoad_EnvOverrides(t *testing.T) {
	overrides := map[string]string{
		"APP_HOST":          "127.0.0.1",
		"APP_PORT":          "9090",
		"APP_ENV":           "testing",
		"VALKEY_HOST":       "cache.example.com",
		"VALKEY_PORT":       "6380",
		"VALKEY_PASSWORD":   "cachepass",
		"PREVIEW_CACHE_TTL": "90s",
		"MAX_UPLOAD_BYTES":  "2048",
	}

	for key, val := range overrides {
		t.Setenv(key, val)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "127.0.0.1")
	check("Port", cfg.Port, "9090")
	check("Env", cfg.Env, "testing")
	check("ValkeyHost", cfg.ValkeyHost, "cache.example.com")
	check("ValkeyPort", cfg.ValkeyPort, "6380")
	check("ValkeyPassword", cfg.ValkeyPassword, "cachepass")

	if cfg.PreviewTTL != 90*time.Second {
		t.Errorf("PreviewTTL = %v, want %v", cfg.PreviewTTL, 90*time.Second)
	}
	if cfg.MaxUploadBytes != 2048 {
		t.Errorf("MaxUploadBytes = %d, want %d", cfg.MaxUploadBytes, 2048)
	}
	if !cfg.ValkeyEnabled() {
		t.Error("ValkeyEnabled() = false with VALKEY_HOST set")
	}
}

// TestLoad_BadValues verifies that malformed numeric and duration values
// are rejected with a helpful error.
func TestLoad_BadValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantMsg string
	}{
		{name: "bad ttl", key: "PREVIEW_CACHE_TTL", value: "five minutes", wantMsg: "PREVIEW_CACHE_TTL"},
		{name: "bad upload size", key: "MAX_UPLOAD_BYTES", value: "lots", wantMsg: "MAX_UPLOAD_BYTES"},
		{name: "negative upload size", key: "MAX_UPLOAD_BYTES", value: "-1", wantMsg: "MAX_UPLOAD_BYTES"},
		{name: "zero upload size", key: "MAX_UPLOAD_BYTES", value: "0", wantMsg: "MAX_UPLOAD_BYTES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("Load() should reject %s=%q", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error should mention %s, got: %v", tt.wantMsg, err)
			}
		})
	}
}

// TestLoad_ProductionRequiresValkeyPassword verifies that production mode
// rejects an enabled Valkey tier with no password, and accepts one with.
func TestLoad_ProductionRequiresValkeyPassword(t *testing.T) {
	t.Run("rejects enabled valkey without password", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("VALKEY_HOST", "cache.internal")
		t.Setenv("VALKEY_PASSWORD", "")

		_, err := Load()
		if err == nil {
			t.Fatal("Load() should return an error when production Valkey has no password")
		}
		if !strings.Contains(err.Error(), "VALKEY_PASSWORD") {
			t.Errorf("error should mention VALKEY_PASSWORD, got: %v", err)
		}
	})

	t.Run("accepts valkey with password", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("VALKEY_HOST", "cache.internal")
		t.Setenv("VALKEY_PASSWORD", "s3cur3-pr0d-p@ssw0rd")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if cfg.ValkeyPassword != "s3cur3-pr0d-p@ssw0rd" {
			t.Errorf("ValkeyPassword = %q, want %q", cfg.ValkeyPassword, "s3cur3-pr0d-p@ssw0rd")
		}
	})

	t.Run("accepts disabled valkey", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("VALKEY_HOST", "")
		t.Setenv("VALKEY_PASSWORD", "")

		if _, err := Load(); err != nil {
			t.Fatalf("Load() should not require a password when Valkey is disabled, got: %v", err)
		}
	})
}

// TestAddr verifies the server listen address format.
func TestAddr(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		port     string
		expected string
	}{
		{name: "default", host: "0.0.0.0", port: "8080", expected: "0.0.0.0:8080"},
		{name: "localhost with custom port", host: "127.0.0.1", port: "3000", expected: "127.0.0.1:3000"},
		{name: "empty host", host: "", port: "8080", expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Host: tt.host, Port: tt.port}
			got := cfg.Addr()
			if got != tt.expected {
				t.Errorf("Addr() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestValkeyAddr verifies the Valkey connection address format.
func TestValkeyAddr(t *testing.T) {
	cfg := Config{ValkeyHost: "cache.example.com", ValkeyPort: "6380"}
	if got := cfg.ValkeyAddr(); got != "cache.example.com:6380" {
		t.Errorf("ValkeyAddr() = %q, want %q", got, "cache.example.com:6380")
	}
}

// TestIsDev verifies the IsDev method for various environment modes.
func TestIsDev(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		expected bool
	}{
		{name: "development mode", env: "development", expected: true},
		{name: "production mode", env: "production", expected: false},
		{name: "testing mode", env: "testing", expected: false},
		{name: "empty string", env: "", expected: false},
		{name: "uppercase DEVELOPMENT", env: "DEVELOPMENT", expected: false},
		{name: "dev shorthand", env: "dev", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Env: tt.env}
			got := cfg.IsDev()
			if got != tt.expected {
				t.Errorf("IsDev() = %v, want %v (env=%q)", got, tt.expected, tt.env)
			}
		})
	}
}
