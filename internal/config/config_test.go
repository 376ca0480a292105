package config

import (
	"testing"
	"time"
)

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "BASE_URL", "REQUEST_TIMEOUT", "SESSION_MAX_AGE",
		"HEALTHCHECK_MAX_RETRIES", "RATE_LIMIT_GENERAL", "COOKIE_DOMAIN",
		"CORS_ALLOWED_ORIGIN", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want %q", cfg.ServerPort, "8080")
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, "http://localhost:8080")
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want %v", cfg.RequestTimeout, 30*time.Second)
	}
	if cfg.SessionMaxAge != 86400 {
		t.Errorf("SessionMaxAge = %d, want %d", cfg.SessionMaxAge, 86400)
	}
	if cfg.HealthcheckMaxRetries != 3 {
		t.Errorf("HealthcheckMaxRetries = %d, want %d", cfg.HealthcheckMaxRetries, 3)
	}
	if cfg.RateLimitGeneral != 120 {
		t.Errorf("RateLimitGeneral = %d, want %d", cfg.RateLimitGeneral, 120)
	}
	if cfg.CookieSecure {
		t.Error("CookieSecure = true, want false for http BASE_URL")
	}
	if cfg.CookieDomain != "" {
		t.Errorf("CookieDomain = %q, want empty", cfg.CookieDomain)
	}
	if cfg.CORSAllowedOrigin != "http://localhost:3000" {
		t.Errorf("CORSAllowedOrigin = %q, want %q", cfg.CORSAllowedOrigin, "http://localhost:3000")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("SESSION_MAX_AGE", "3600")
	t.Setenv("HEALTHCHECK_MAX_RETRIES", "5")
	t.Setenv("RATE_LIMIT_GENERAL", "60")
	t.Setenv("COOKIE_DOMAIN", "example.com")
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://app.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want %q", cfg.ServerPort, "9090")
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want %v", cfg.RequestTimeout, 5*time.Second)
	}
	if cfg.SessionMaxAge != 3600 {
		t.Errorf("SessionMaxAge = %d, want %d", cfg.SessionMaxAge, 3600)
	}
	if cfg.HealthcheckMaxRetries != 5 {
		t.Errorf("HealthcheckMaxRetries = %d, want %d", cfg.HealthcheckMaxRetries, 5)
	}
	if cfg.RateLimitGeneral != 60 {
		t.Errorf("RateLimitGeneral = %d, want %d", cfg.RateLimitGeneral, 60)
	}
	if cfg.CookieDomain != "example.com" {
		t.Errorf("CookieDomain = %q, want %q", cfg.CookieDomain, "example.com")
	}
	if cfg.CORSAllowedOrigin != "https://app.example.com" {
		t.Errorf("CORSAllowedOrigin = %q, want %q", cfg.CORSAllowedOrigin, "https://app.example.com")
	}
}

func TestLoad_HTTPSBaseURL_EnablesSecureCookie(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("BASE_URL", "https://loginkit.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !cfg.CookieSecure {
		t.Error("CookieSecure = false, want true for https BASE_URL")
	}
}

func TestLoad_InvalidValues_FallBackToDefaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("REQUEST_TIMEOUT", "not-a-duration")
	t.Setenv("SESSION_MAX_AGE", "abc")
	t.Setenv("HEALTHCHECK_MAX_RETRIES", "three")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want %v", cfg.RequestTimeout, 30*time.Second)
	}
	if cfg.SessionMaxAge != 86400 {
		t.Errorf("SessionMaxAge = %d, want %d", cfg.SessionMaxAge, 86400)
	}
	if cfg.HealthcheckMaxRetries != 3 {
		t.Errorf("HealthcheckMaxRetries = %d, want %d", cfg.HealthcheckMaxRetries, 3)
	}
}

func TestLoad_OutOfRangeValues_FallBackToDefaults(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, cfg *Config)
	}{
		{"negative healthcheck retries", "HEALTHCHECK_MAX_RETRIES", "-1", func(t *testing.T, cfg *Config) {
			if cfg.HealthcheckMaxRetries != 3 {
				t.Errorf("HealthcheckMaxRetries = %d, want %d", cfg.HealthcheckMaxRetries, 3)
			}
		}},
		{"zero session max age", "SESSION_MAX_AGE", "0", func(t *testing.T, cfg *Config) {
			if cfg.SessionMaxAge != 86400 {
				t.Errorf("SessionMaxAge = %d, want %d", cfg.SessionMaxAge, 86400)
			}
		}},
		{"negative session max age", "SESSION_MAX_AGE", "-60", func(t *testing.T, cfg *Config) {
			if cfg.SessionMaxAge != 86400 {
				t.Errorf("SessionMaxAge = %d, want %d", cfg.SessionMaxAge, 86400)
			}
		}},
		{"zero request timeout", "REQUEST_TIMEOUT", "0s", func(t *testing.T, cfg *Config) {
			if cfg.RequestTimeout != 30*time.Second {
				t.Errorf("RequestTimeout = %v, want %v", cfg.RequestTimeout, 30*time.Second)
			}
		}},
		{"negative request timeout", "REQUEST_TIMEOUT", "-5s", func(t *testing.T, cfg *Config) {
			if cfg.RequestTimeout != 30*time.Second {
				t.Errorf("RequestTimeout = %v, want %v", cfg.RequestTimeout, 30*time.Second)
			}
		}},
		{"zero rate limit", "RATE_LIMIT_GENERAL", "0", func(t *testing.T, cfg *Config) {
			if cfg.RateLimitGeneral != 120 {
				t.Errorf("RateLimitGeneral = %d, want %d", cfg.RateLimitGeneral, 120)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_ZeroHealthcheckRetries_IsAllowed(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("HEALTHCHECK_MAX_RETRIES", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HealthcheckMaxRetries != 0 {
		t.Errorf("HealthcheckMaxRetries = %d, want 0", cfg.HealthcheckMaxRetries)
	}
}
