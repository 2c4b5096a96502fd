// Package config assembles the CLI's runtime settings from, in order of
// increasing precedence: defaults, environment (including a .env file), a
// JSON config file (-c/-config), and command-line flags.
package config

import "time"

// Config holds runtime settings.
//
//   - ServerBaseURL: scheme://host:port of the admin backend.
//   - RequestTimeout: per-request HTTP timeout.
//   - LocalDBPath: sqlite file holding persisted client state.
//   - PageLimit: page size for the paginated items listing.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	LocalDBPath    string
	PageLimit      int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.LocalDBPath = "adminctl.db"
	c.PageLimit = 10
}

// LoadConfig builds a Config from all sources. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
