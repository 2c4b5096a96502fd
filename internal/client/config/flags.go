package config

import (
	"flag"
	"os"
	"time"

	"github.com/aidirectory/adminctl/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. Only the flags below are
// parsed; everything else in os.Args is left for other packages.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-s", "-server", "-t", "-timeout", "-d", "-db", "-l", "-limit",
	})

	var (
		server  string
		timeout time.Duration
		dbPath  string
		limit   int
	)

	fs := flag.NewFlagSet("adminctl", flag.ContinueOnError)
	fs.StringVar(&server, "server", "", "admin backend base URL")
	fs.StringVar(&server, "s", "", "admin backend base URL (short)")
	fs.DurationVar(&timeout, "timeout", 0, "per-request timeout")
	fs.DurationVar(&timeout, "t", 0, "per-request timeout (short)")
	fs.StringVar(&dbPath, "db", "", "local state database path")
	fs.StringVar(&dbPath, "d", "", "local state database path (short)")
	fs.IntVar(&limit, "limit", 0, "items page size")
	fs.IntVar(&limit, "l", 0, "items page size (short)")
	_ = fs.Parse(args)

	if server != "" {
		cfg.ServerBaseURL = server
	}
	if timeout > 0 {
		cfg.RequestTimeout = timeout
	}
	if dbPath != "" {
		cfg.LocalDBPath = dbPath
	}
	if limit > 0 {
		cfg.PageLimit = limit
	}
}
