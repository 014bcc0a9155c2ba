package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		TickerURL      string `yaml:"ticker_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"data_source"`
	History struct {
		Path       string `yaml:"path"`
		MaxEntries int    `yaml:"max_entries"`
	} `yaml:"history"`
	Chart struct {
		Style  string `yaml:"style"` // "bars" or "line"
		Height int    `yaml:"height"`
	} `yaml:"chart"`
	Report struct {
		Path           string `yaml:"path"`
		UTCOffsetHours int    `yaml:"utc_offset_hours"`
		ZoneLabel      string `yaml:"zone_label"`
	} `yaml:"report"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TICKER_URL"); v != "" {
		cfg.DataSource.TickerURL = v
	}
	if v := os.Getenv("HISTORY_PATH"); v != "" {
		cfg.History.Path = v
	}
	if v := os.Getenv("README_PATH"); v != "" {
		cfg.Report.Path = v
	}
	if v := os.Getenv("CHART_STYLE"); v != "" {
		cfg.Chart.Style = v
	}
	if v := os.Getenv("CHART_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Chart.Height = n
		}
	}
	if v := os.Getenv("MAX_ENTRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.History.MaxEntries = n
		}
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.TickerURL == "" {
		cfg.DataSource.TickerURL = "https://blockchain.info/ticker"
	}
	if cfg.DataSource.TimeoutSeconds == 0 {
		cfg.DataSource.TimeoutSeconds = 10
	}
	if cfg.History.Path == "" {
		cfg.History.Path = "history.txt"
	}
	if cfg.History.MaxEntries == 0 {
		cfg.History.MaxEntries = 10
	}
	if cfg.Chart.Style == "" {
		cfg.Chart.Style = "bars"
	}
	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = 8
	}
	if cfg.Report.Path == "" {
		cfg.Report.Path = "README.md"
	}
	if cfg.Report.UTCOffsetHours == 0 {
		cfg.Report.UTCOffsetHours = 9
	}
	if cfg.Report.ZoneLabel == "" {
		cfg.Report.ZoneLabel = "KST"
	}
	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = "0 0 * * * *"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.DataSource.TickerURL == "" {
		return fmt.Errorf("data_source.ticker_url is required")
	}
	if c.DataSource.TimeoutSeconds <= 0 {
		return fmt.Errorf("data_source.timeout_seconds must be positive")
	}
	if c.History.MaxEntries < 1 {
		return fmt.Errorf("history.max_entries must be at least 1")
	}
	if c.Chart.Style != "bars" && c.Chart.Style != "line" {
		return fmt.Errorf("chart.style must be \"bars\" or \"line\", got %q", c.Chart.Style)
	}
	if c.Chart.Height < 2 {
		return fmt.Errorf("chart.height must be at least 2")
	}
	return nil
}

// Timeout returns the ticker request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.DataSource.TimeoutSeconds) * time.Second
}

// Location returns the fixed-offset zone used for timestamps.
func (c *Config) Location() *time.Location {
	return time.FixedZone(c.Report.ZoneLabel, c.Report.UTCOffsetHours*3600)
}
