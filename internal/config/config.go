// Package config reads runtime settings from a .env file and
// environment variables.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting the app reads from the
// environment. All fields have working defaults so a fresh install
// needs no configuration at all.
type Config struct {
	// DBPath overrides the XDG-resolved database location.
	DBPath string
	// ChildID names the active player profile.
	ChildID string
	// LevelsPath points at an optional JSON level catalog.
	LevelsPath string
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string
}

// Load reads configuration from a .env file (if present) and the
// environment, applying defaults when values are missing.
func Load() Config {
	// Ignore error so the app still starts without a .env file.
	_ = godotenv.Load()

	return Config{
		DBPath:     os.Getenv("MINDPLAY_DB"),
		ChildID:    envOr("MINDPLAY_CHILD", "default"),
		LevelsPath: os.Getenv("MINDPLAY_LEVELS"),
		LogLevel:   envOr("MINDPLAY_LOG_LEVEL", "info"),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
