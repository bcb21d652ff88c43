// Package config loads client configuration from the environment.
//
// The backend origin is the single override point for pointing the CLI at a
// different WinnerWay deployment; everything else (endpoint paths, limits)
// is part of the compatibility surface and fixed in code.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the local development backend.
const DefaultBaseURL = "http://localhost:5050"

// Config holds the resolved client configuration.
type Config struct {
	// BaseURL is the WinnerWay API origin, without a trailing slash.
	BaseURL string
}

// Load reads configuration from a .env file (if present) and the
// environment. Environment variables win over .env values.
//
//	WINNERWAY_API_BASE_URL  backend origin (default http://localhost:5050)
func Load() Config {
	_ = godotenv.Load()

	base := os.Getenv("WINNERWAY_API_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}

	return Config{
		BaseURL: strings.TrimRight(base, "/"),
	}
}
