package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays values from the process environment. A .env file in the
// working directory is loaded first, if present; real environment variables
// win over it (godotenv does not override existing variables).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADMINCTL_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("ADMINCTL_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("ADMINCTL_DB_PATH"); v != "" {
		cfg.LocalDBPath = v
	}
	if v := os.Getenv("ADMINCTL_PAGE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageLimit = n
		}
	}
}
