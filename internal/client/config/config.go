package config

import "time"

// Config holds runtime settings for the shop CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the version
//     prefix (e.g. "http://localhost:8080/api/v1").
//   - StoragePath: SQLite file holding the persisted session.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	APIBaseURL     string
	StoragePath    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api/v1"
	c.StoragePath = "shopfront.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (with an optional .env file), JSON (if present) and
// command-line flags (if present). Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
