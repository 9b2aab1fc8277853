// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// JWTSecret is the HMAC secret used to verify bearer tokens. Required.
	JWTSecret string

	// OpenAIAPIKey authenticates calls to the itinerary provider. Optional:
	// when empty, the planner serves deterministic fallback itineraries and
	// budgeting advice degrades to fixed text.
	OpenAIAPIKey string

	// AIModel is the chat model used for generation. Defaults to "gpt-4o-mini".
	AIModel string

	// AITimeout bounds a single provider call. Defaults to 30 seconds.
	// Set AI_TIMEOUT_SECONDS to override.
	AITimeout time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		AIModel:      getEnv("AI_MODEL", "gpt-4o-mini"),
		AITimeout:    30 * time.Second,
	}

	if raw := os.Getenv("AI_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs < 1 {
			return Config{}, fmt.Errorf("AI_TIMEOUT_SECONDS must be a positive integer, got %q", raw)
		}
		cfg.AITimeout = time.Duration(secs) * time.Second
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
