package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvAPIBaseURL = "SHIFTDESK_API_URL"
	EnvWSBaseURL  = "SHIFTDESK_WS_URL"
)

// Default endpoints for local development
const (
	DefaultAPIBaseURL = "http://localhost:8000/api"
	DefaultWSBaseURL  = "ws://localhost:8000/ws"
)

// Env holds build/run-time endpoint configuration
type Env struct {
	APIBaseURL string
	WSBaseURL  string
}

// LoadEnv reads endpoint configuration from the environment. A .env file is
// honoured when present so development setups need no exported variables.
func LoadEnv() Env {
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	return Env{
		APIBaseURL: getOrDefault(EnvAPIBaseURL, DefaultAPIBaseURL),
		WSBaseURL:  getOrDefault(EnvWSBaseURL, DefaultWSBaseURL),
	}
}

func getOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
