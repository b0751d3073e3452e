package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/vending/internal/flagx"
	"github.com/dmitrijs2005/vending/internal/timex"
)

// JSONConfig is the on-disk shape of the config file. Fields left out of the
// file keep their current values.
type JSONConfig struct {
	ServerURL            *string         `json:"server_url"`
	RequestTimeout       *timex.Duration `json:"request_timeout"`
	DatabasePath         *string         `json:"database_path"`
	LogLevel             *string         `json:"log_level"`
	MetricsAddr          *string         `json:"metrics_addr"`
	ClearStaleCredential *bool           `json:"clear_stale_credential"`
	HealthCheckInterval  *timex.Duration `json:"health_check_interval"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}
	jc.apply(cfg)
	return nil
}

func (jc JSONConfig) apply(cfg *Config) {
	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.MetricsAddr != nil {
		cfg.MetricsAddr = *jc.MetricsAddr
	}
	if jc.ClearStaleCredential != nil {
		cfg.ClearStaleCredential = *jc.ClearStaleCredential
	}
	if jc.HealthCheckInterval != nil {
		cfg.HealthCheckInterval = jc.HealthCheckInterval.Duration
	}
}
