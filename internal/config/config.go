// filepath: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"reelhub/internal/shared"
)

// Config holds the application's configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	Logging LoggingConfig `toml:"logging"`
	Auth    AuthConfig    `toml:"auth"`

	AdminPassword      string `toml:"-"` // Not loaded from file, set by CLI/env
	ResetAdminPassword bool   `toml:"-"` // Not loaded from file, set by CLI/env

	SessionTimeout time.Duration `toml:"-"` // Runtime computed value
	SweepInterval  time.Duration `toml:"-"` // Runtime computed value
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds the persistence configuration.
type StorageConfig struct {
	UsersFile string `toml:"users_file"` // flat file holding the user maps
	ImportDir string `toml:"import_dir"` // optional sample data to load at startup
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	AuditEnabled bool   `toml:"audit_enabled"`
}

// AuthConfig holds session settings as human-readable durations.
type AuthConfig struct {
	SessionTimeout string `toml:"session_timeout"` // e.g. "30m", "1d"
	SweepInterval  string `toml:"sweep_interval"`  // e.g. "5m"
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// ParseAndValidate processes configuration strings into runtime values.
// It sets defaults if values are missing and parses human-readable durations.
func (c *Config) ParseAndValidate() error {
	if c.Auth.SessionTimeout == "" {
		c.Auth.SessionTimeout = "30m"
	}
	if c.Auth.SweepInterval == "" {
		c.Auth.SweepInterval = "5m"
	}

	timeout, err := shared.ParseDuration(c.Auth.SessionTimeout)
	if err != nil {
		return fmt.Errorf("invalid session_timeout: %w", err)
	}
	c.SessionTimeout = timeout

	sweep, err := shared.ParseDuration(c.Auth.SweepInterval)
	if err != nil {
		return fmt.Errorf("invalid sweep_interval: %w", err)
	}
	c.SweepInterval = sweep

	if c.Storage.UsersFile == "" {
		c.Storage.UsersFile = "users.json"
	}

	return nil
}
