package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first (if present); real environment
// variables win over the file, which is godotenv's default behavior.
//
// Recognized variables:
//
//	API_BASE_URL      — base URL of the backend REST API
//	STORAGE_PATH      — path to the local session database
//	REQUEST_TIMEOUT   — Go duration string, e.g. "10s"
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("API_BASE_URL"); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv("STORAGE_PATH"); ok && v != "" {
		cfg.StoragePath = v
	}
	if v, ok := os.LookupEnv("REQUEST_TIMEOUT"); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
