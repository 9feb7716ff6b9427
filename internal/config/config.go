// Package config builds the service configuration from the environment
// once at cold start. Components receive the Config explicitly; nothing
// reads env vars from inside business logic.
package config

import (
	"os"
	"time"
)

type Config struct {
	Environment string // "dev" | "qa" | "prod"

	CatalogBaseURL string        // external catalog root, ex: https://swapi.dev/api
	CatalogTimeout time.Duration // per-request timeout for catalog calls

	TableName string // DynamoDB table for personajes; empty means misconfigured

	LogLevel string // "debug" | "info" | "warn" | "error"
}

func Load() *Config {
	return &Config{
		Environment:    getenv("ENVIRONMENT", "dev"),
		CatalogBaseURL: getenv("SWAPI_BASE_URL", "https://swapi.dev/api"),
		CatalogTimeout: getduration("SWAPI_TIMEOUT", 10*time.Second),
		TableName:      os.Getenv("PERSONAJES_TABLE"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
	}
}

// IsProd reports whether failure detail must be suppressed in responses.
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
