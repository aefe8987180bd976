// Package config loads runtime configuration for the shop CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file loaded first
//     via godotenv (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-s string   path to the local session database
//	-t int      request timeout (seconds)
//
// Supported environment variables
//
//	API_BASE_URL, STORAGE_PATH, REQUEST_TIMEOUT (Go duration, e.g. "10s")
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8080/api/v1",
//	  "storage_path": "shopfront.db",
//	  "request_timeout": "10s"
//	}
package config
