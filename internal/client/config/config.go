package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the vending CLI.
type Config struct {
	ServerURL            string
	RequestTimeout       time.Duration
	DatabasePath         string
	LogLevel             string
	MetricsAddr          string
	ClearStaleCredential bool
	HealthCheckInterval  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:9000"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "vending.db"
	c.LogLevel = "info"
	c.MetricsAddr = ""
	c.ClearStaleCredential = false
	c.HealthCheckInterval = 30 * time.Second
}

// LoadConfig builds a Config from defaults, then the JSON file named by -c or
// -config, then the remaining flags in os.Args. Later sources win.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
