// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Ingest  IngestConfig  `mapstructure:"ingest"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// IngestConfig controls the periodic rate collection cycle.
type IngestConfig struct {
	IntervalMinutes int    `mapstructure:"interval_minutes"`
	FeedKey         string `mapstructure:"feed_key"`  // Redis key carrying the raw feed payload
	FeedPath        string `mapstructure:"feed_path"` // optional file fallback for local runs
	SnapshotKey     string `mapstructure:"snapshot_key"`
	SnapshotTTLDays int    `mapstructure:"snapshot_ttl_days"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func validateConfig(cfg *Config) error {
	if cfg.Redis.Address == "" {
		return fmt.Errorf("redis.address is required")
	}
	if cfg.Ingest.IntervalMinutes <= 0 {
		return fmt.Errorf("ingest.interval_minutes must be positive")
	}
	if cfg.Ingest.FeedKey == "" && cfg.Ingest.FeedPath == "" {
		return fmt.Errorf("one of ingest.feed_key or ingest.feed_path is required")
	}
	return nil
}
