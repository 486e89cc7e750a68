// Package config loads and saves the TaskMeister configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultNotifyTimeoutSecs bounds the whole notification exchange; a
// timeout counts as a failed delivery and leaves the batch pending.
const DefaultNotifyTimeoutSecs = 30

// Config represents the flat TaskMeister configuration.
type Config struct {
	Version  string `json:"version"`
	DBPath   string `json:"db_path,omitempty"` // defaults to ~/.taskmeister/taskmeister.db
	SMTPHost string `json:"smtp_host"`
	SMTPPort int    `json:"smtp_port"`
	SMTPUser string `json:"smtp_user,omitempty"`
	SMTPPass string `json:"smtp_pass,omitempty"`
	From     string `json:"from"` // sender address for assignment mail

	// NotifyTimeoutSecs is the per-send timeout in seconds.
	NotifyTimeoutSecs int `json:"notify_timeout_secs,omitempty"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Version:           "1",
		SMTPHost:          "localhost",
		SMTPPort:          587,
		NotifyTimeoutSecs: DefaultNotifyTimeoutSecs,
	}
}

// DefaultDir returns the directory holding the config file and database.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".taskmeister"), nil
}

// Load reads config.json from dir. Missing fields fall back to defaults;
// a missing file is an error the caller may treat as "use Default()".
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.NotifyTimeoutSecs <= 0 {
		cfg.NotifyTimeoutSecs = DefaultNotifyTimeoutSecs
	}

	return cfg, nil
}

// Save writes config.json to dir, creating it when needed.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// SMTPConfigured reports whether outbound mail can be attempted at all.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPPort > 0 && c.From != ""
}
