package config

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Feed struct {
		SheetID     string `yaml:"sheet_id"`
		SheetName   string `yaml:"sheet_name"`
		URL         string `yaml:"url"`
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"feed"`
	Store struct {
		BoltPath string `yaml:"bolt_path"`
	} `yaml:"store"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
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
	if v := os.Getenv("FEED_SHEET_ID"); v != "" {
		cfg.Feed.SheetID = v
	}
	if v := os.Getenv("FEED_SHEET_NAME"); v != "" {
		cfg.Feed.SheetName = v
	}
	if v := os.Getenv("FEED_URL"); v != "" {
		cfg.Feed.URL = v
	}
	if v := os.Getenv("FEED_REFRESH_CRON"); v != "" {
		cfg.Feed.RefreshCron = v
	}
	if v := os.Getenv("BOLT_PATH"); v != "" {
		cfg.Store.BoltPath = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Feed.SheetName == "" {
		cfg.Feed.SheetName = "Sheet1"
	}
	if cfg.Feed.URL == "" && cfg.Feed.SheetID != "" {
		cfg.Feed.URL = fmt.Sprintf(
			"https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:json&sheet=%s",
			cfg.Feed.SheetID, url.QueryEscape(cfg.Feed.SheetName))
	}
	if cfg.Feed.RefreshCron == "" {
		cfg.Feed.RefreshCron = "0 */30 * * * *"
	}
	if cfg.Store.BoltPath == "" {
		cfg.Store.BoltPath = "data/fundlink.db"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/fundlink_history.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Feed.URL == "" {
		return fmt.Errorf("feed.url or feed.sheet_id is required")
	}
	return nil
}
