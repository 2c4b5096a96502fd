package config

import (
	"encoding/json"
	"os"

	"github.com/aidirectory/adminctl/internal/flagx"
	"github.com/aidirectory/adminctl/internal/timex"
)

// jsonConfig is the file DTO. timex.Duration lets the file spell intervals
// either as "15s" or as integer nanoseconds.
type jsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LocalDBPath    string         `json:"local_db_path"`
	PageLimit      int            `json:"page_limit"`
}

// parseJSON overlays cfg with values from the JSON file named by -c/-config.
// Nothing happens when no file is given; an unreadable or malformed file
// panics, since running with half-applied config is worse than not starting.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
	if jc.PageLimit > 0 {
		cfg.PageLimit = jc.PageLimit
	}
}
