// Package config provides configuration management for the application.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Telegram   TelegramConfig   `mapstructure:"telegram"`
	Bonus      BonusConfig      `mapstructure:"bonus"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	URL         string `mapstructure:"url"`
	PoolMinSize int    `mapstructure:"pool_min_size"`
	PoolMaxSize int    `mapstructure:"pool_max_size"`
}

type TelegramConfig struct {
	Token          string               `mapstructure:"token"`
	WebhookURL     string               `mapstructure:"webhook_url"`
	APIEndpoint    string               `mapstructure:"api_endpoint"`
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

type BonusConfig struct {
	ExpiryDays int `mapstructure:"expiry_days"`
}

type MiddlewareConfig struct {
	RateLimit      int `mapstructure:"rate_limit"`
	RateLimitBurst int `mapstructure:"rate_limit_burst"`
}

func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "8000")
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("database.pool_min_size", 1)
	viper.SetDefault("database.pool_max_size", 10)
	viper.SetDefault("telegram.api_endpoint", "https://api.telegram.org")
	viper.SetDefault("telegram.timeout", 30)
	viper.SetDefault("telegram.circuit_breaker.max_requests", 3)
	viper.SetDefault("telegram.circuit_breaker.interval", 60)
	viper.SetDefault("telegram.circuit_breaker.timeout", 60)
	viper.SetDefault("telegram.circuit_breaker.failure_ratio", 0.6)
	viper.SetDefault("telegram.circuit_breaker.consecutive_fails", 5)
	viper.SetDefault("bonus.expiry_days", 365)
	viper.SetDefault("middleware.rate_limit", 100)
	viper.SetDefault("middleware.rate_limit_burst", 1000)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate enforces the invariants the rest of the process relies on.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}
	if c.Database.URL == "" {
		return fmt.Errorf("database.url is required")
	}
	if c.Database.PoolMinSize < 1 {
		return fmt.Errorf("database.pool_min_size must be at least 1")
	}
	if c.Database.PoolMinSize > c.Database.PoolMaxSize {
		return fmt.Errorf("database.pool_min_size cannot be greater than database.pool_max_size")
	}
	if c.Bonus.ExpiryDays <= 0 {
		return fmt.Errorf("bonus.expiry_days must be positive")
	}
	return nil
}
