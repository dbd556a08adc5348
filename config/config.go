package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at process start and handed to the wiring in main.
// Nothing reads the environment after Load returns.
type Config struct {
	Port               string
	RedisAddr          string
	CacheTTL           time.Duration
	RateLimit          int
	RateLimitWindow    time.Duration
	CORSAllowedOrigins []string
	LogLevel           string
}

// Load reads configuration from a .env file (if present) and the process
// environment. Unset variables fall back to development defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:               "8080",
		CacheTTL:           time.Hour,
		RateLimit:          60,
		RateLimitWindow:    time.Minute,
		CORSAllowedOrigins: []string{"*"},
		LogLevel:           "info",
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
		}
		cfg.CacheTTL = ttl
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return Config{}, fmt.Errorf("RATE_LIMIT must be a positive integer, got %q", v)
		}
		cfg.RateLimit = limit
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		window, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse RATE_LIMIT_WINDOW: %w", err)
		}
		cfg.RateLimitWindow = window
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORSAllowedOrigins = origins
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
