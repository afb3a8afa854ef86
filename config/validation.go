package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	maxFetcherItems   = 1000
	maxFetcherTimeout = 2 * time.Minute
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateFetcherConfig(&config.Fetcher); err != nil {
		return fmt.Errorf("fetcher config validation failed: %w", err)
	}

	if err := validateSyncConfig(&config.Sync); err != nil {
		return fmt.Errorf("sync config validation failed: %w", err)
	}

	// The cron endpoint answers only after its sync run ends.
	if config.Server.WriteTimeout <= config.Sync.RunTimeout {
		return fmt.Errorf("server write timeout %v must exceed sync run timeout %v",
			config.Server.WriteTimeout, config.Sync.RunTimeout)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if config.Otel.SampleRatio < 0 || config.Otel.SampleRatio > 1 {
		return fmt.Errorf("otel sample ratio must be between 0 and 1, got %v", config.Otel.SampleRatio)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 || config.WriteTimeout <= 0 || config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got read=%v write=%v idle=%v",
			config.ReadTimeout, config.WriteTimeout, config.IdleTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}

	if config.MinConnections < 0 || config.MinConnections > config.MaxConnections {
		return fmt.Errorf("min connections must be between 0 and %d, got %d", config.MaxConnections, config.MinConnections)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

// The fetch timeout and item cap are tunable but must stay bounded so a
// single feed cannot stall a sync run.
func validateFetcherConfig(config *FetcherConfig) error {
	if config.Timeout <= 0 || config.Timeout > maxFetcherTimeout {
		return fmt.Errorf("fetch timeout must be in (0, %v], got %v", maxFetcherTimeout, config.Timeout)
	}

	if config.MaxItems < 1 || config.MaxItems > maxFetcherItems {
		return fmt.Errorf("max items must be between 1 and %d, got %d", maxFetcherItems, config.MaxItems)
	}

	if config.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive, got %d", config.MaxBodyBytes)
	}

	if config.HostRateInterval < 0 {
		return fmt.Errorf("host rate interval cannot be negative, got %v", config.HostRateInterval)
	}

	return nil
}

func validateSyncConfig(config *SyncConfig) error {
	if config.DefaultLimit < 1 {
		return fmt.Errorf("default limit must be at least 1, got %d", config.DefaultLimit)
	}

	if config.CronLimit < 1 {
		return fmt.Errorf("cron limit must be at least 1, got %d", config.CronLimit)
	}

	if config.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", config.Workers)
	}

	if config.RunTimeout <= 0 {
		return fmt.Errorf("run timeout must be positive, got %v", config.RunTimeout)
	}

	if config.SchedulerEnabled && config.Interval < time.Minute {
		return fmt.Errorf("sync interval must be at least 1m when the scheduler is enabled, got %v", config.Interval)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	level := strings.ToLower(config.Level)
	valid := false
	for _, l := range validLevels {
		if level == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid log level: %s", config.Level)
	}

	if config.Format != "json" && config.Format != "text" {
		return fmt.Errorf("invalid log format: %s", config.Format)
	}

	return nil
}
