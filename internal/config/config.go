package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort         = "8080"
	defaultDatabaseURL  = "hotel.db"
	defaultJWTAccessTTL = "24h"
	defaultLogLevel     = "info"
)

type Config struct {
	AppEnv       string
	Port         string
	DatabaseURL  string
	JWTSecret    string
	JWTAccessTTL time.Duration
	LogLevel     string
}

// Load reads configuration from the environment, picking up a local .env
// file when present. JWT_SECRET has no default outside dev.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:      strings.ToLower(getEnv("APP_ENV", "dev")),
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		LogLevel:    getEnv("LOG_LEVEL", defaultLogLevel),
	}

	if cfg.JWTSecret == "" {
		if cfg.AppEnv != "dev" {
			return nil, fmt.Errorf("JWT_SECRET is required when APP_ENV=%s", cfg.AppEnv)
		}
		cfg.JWTSecret = "change-me-jwt-secret"
	}

	ttl, err := time.ParseDuration(getEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TTL: %w", err)
	}
	cfg.JWTAccessTTL = ttl

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
