// Package config loads runtime configuration for the vending CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string       vending API base URL (default http://localhost:9000)
//	-t int          request timeout in seconds (default 10)
//	-d string       local database path (default vending.db)
//	-l string       log level (default info)
//	-m string       Prometheus metrics listen address (default disabled)
//	-i int          backend health check interval in seconds (default 30, 0 disables)
//	-clear-stale    clear the stored credential if the server rejects it
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "5s" or integer
// nanoseconds. Keys missing from the file leave the default in place:
//
//	{
//	  "server_url": "http://localhost:9000",
//	  "request_timeout": "10s",
//	  "database_path": "vending.db",
//	  "log_level": "info",
//	  "metrics_addr": ":2112",
//	  "clear_stale_credential": false,
//	  "health_check_interval": "30s"
//	}
//
// Environment variables are not read.
package config
