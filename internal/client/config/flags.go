package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/vending/internal/flagx"
)

var (
	valuedFlags  = []string{"a", "t", "d", "l", "m", "i"}
	booleanFlags = []string{"clear-stale"}
)

// parseFlags overlays cfg with command-line flags. Flags it does not know
// about, such as -c, are filtered out first.
//
//	-a string       vending API base URL
//	-t int          request timeout in seconds
//	-d string       path to the local SQLite database
//	-l string       log level (debug, info, warn, error)
//	-m string       address to serve Prometheus metrics on; empty disables
//	-i int          backend health check interval in seconds; 0 disables
//	-clear-stale    drop the stored credential when the server rejects it
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("vending", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "vending API base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to local database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")
	interval := fs.Int("i", int(cfg.HealthCheckInterval.Seconds()), "health check interval (in seconds)")
	fs.BoolVar(&cfg.ClearStaleCredential, "clear-stale", cfg.ClearStaleCredential, "clear rejected credential on startup")

	if err := fs.Parse(flagx.FilterArgs(args, valuedFlags, booleanFlags)); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.HealthCheckInterval = time.Duration(*interval) * time.Second
	return nil
}
