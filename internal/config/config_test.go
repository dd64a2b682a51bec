package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestbonus/bonus-bot/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
telegram:
  token: "123456:abc"
database:
  url: "postgres://localhost/loyalty"
`)

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 1, cfg.Database.PoolMinSize)
	assert.Equal(t, 10, cfg.Database.PoolMaxSize)
	assert.Equal(t, 365, cfg.Bonus.ExpiryDays)
	assert.Equal(t, "https://api.telegram.org", cfg.Telegram.APIEndpoint)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	base := func() *config.Config {
		return &config.Config{
			Database: config.DatabaseConfig{
				URL:         "postgres://localhost/loyalty",
				PoolMinSize: 1,
				PoolMaxSize: 10,
			},
			Telegram: config.TelegramConfig{Token: "123456:abc"},
			Bonus:    config.BonusConfig{ExpiryDays: 365},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *config.Config) {},
		},
		{
			name:    "missing token",
			mutate:  func(c *config.Config) { c.Telegram.Token = "" },
			wantErr: "telegram.token",
		},
		{
			name:    "missing database url",
			mutate:  func(c *config.Config) { c.Database.URL = "" },
			wantErr: "database.url",
		},
		{
			name:    "pool min below one",
			mutate:  func(c *config.Config) { c.Database.PoolMinSize = 0 },
			wantErr: "pool_min_size",
		},
		{
			name: "pool min above max",
			mutate: func(c *config.Config) {
				c.Database.PoolMinSize = 20
				c.Database.PoolMaxSize = 10
			},
			wantErr: "pool_min_size",
		},
		{
			name:    "non-positive expiry days",
			mutate:  func(c *config.Config) { c.Bonus.ExpiryDays = 0 },
			wantErr: "expiry_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
