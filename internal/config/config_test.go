// filepath: internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ParseAndValidate(t *testing.T) {
	t.Run("Valid Config", func(t *testing.T) {
		cfg := &Config{
			Auth: AuthConfig{
				SessionTimeout: "1h",
				SweepInterval:  "2m",
			},
		}
		err := cfg.ParseAndValidate()
		assert.NoError(t, err)
		assert.Equal(t, time.Hour, cfg.SessionTimeout)
		assert.Equal(t, 2*time.Minute, cfg.SweepInterval)
	})

	t.Run("Default Fallback", func(t *testing.T) {
		cfg := &Config{}
		err := cfg.ParseAndValidate()
		assert.NoError(t, err)
		assert.Equal(t, "30m", cfg.Auth.SessionTimeout)
		assert.Equal(t, 30*time.Minute, cfg.SessionTimeout)
		assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
		assert.Equal(t, "users.json", cfg.Storage.UsersFile)
	})

	t.Run("Day Suffix", func(t *testing.T) {
		cfg := &Config{
			Auth: AuthConfig{SessionTimeout: "1d"},
		}
		err := cfg.ParseAndValidate()
		assert.NoError(t, err)
		assert.Equal(t, 24*time.Hour, cfg.SessionTimeout)
	})

	t.Run("Invalid Config", func(t *testing.T) {
		cfg := &Config{
			Auth: AuthConfig{SessionTimeout: "NotADuration"},
		}
		err := cfg.ParseAndValidate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid session_timeout")
	})
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[server]
host = "127.0.0.1"
port = 9090

[storage]
users_file = "data/users.json"

[logging]
level = "debug"
audit_enabled = true

[auth]
session_timeout = "45m"
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "data/users.json", cfg.Storage.UsersFile)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.AuditEnabled)

	assert.NoError(t, cfg.ParseAndValidate())
	assert.Equal(t, 45*time.Minute, cfg.SessionTimeout)
}
