package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hitoshi/loginkit/internal/model"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Server
	ServerPort     string
	BaseURL        string
	RequestTimeout time.Duration

	// Session
	SessionMaxAge int

	// Healthcheck
	HealthcheckMaxRetries int

	// Rate Limit
	RateLimitGeneral int

	// Cookie
	CookieSecure bool
	CookieDomain string

	// CORS
	CORSAllowedOrigin string

	// Logging
	LogLevel string
}

// Load は環境変数からConfigを読み込む。
// 必須の環境変数はなく、未設定・解析不能・範囲外の値は既定値で補う。
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.BaseURL = getEnvString("BASE_URL", "http://localhost:8080")
	cfg.RequestTimeout = getEnvDuration("REQUEST_TIMEOUT", model.DefaultTimeout)
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = model.DefaultTimeout
	}
	cfg.SessionMaxAge = getEnvInt("SESSION_MAX_AGE", 86400)
	if cfg.SessionMaxAge <= 0 {
		cfg.SessionMaxAge = 86400
	}
	cfg.HealthcheckMaxRetries = getEnvInt("HEALTHCHECK_MAX_RETRIES", model.MaxRetries)
	if cfg.HealthcheckMaxRetries < 0 {
		cfg.HealthcheckMaxRetries = model.MaxRetries
	}
	cfg.RateLimitGeneral = getEnvInt("RATE_LIMIT_GENERAL", 120)
	if cfg.RateLimitGeneral <= 0 {
		cfg.RateLimitGeneral = 120
	}
	cfg.CookieSecure = strings.HasPrefix(cfg.BaseURL, "https://")
	cfg.CookieDomain = getEnvString("COOKIE_DOMAIN", "")
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")
	cfg.LogLevel = getEnvString("LOG_LEVEL", "info")

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
