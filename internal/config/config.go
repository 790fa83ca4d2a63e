// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package config

import "time"

// DefaultExcludedAppIDs are Steam application IDs that show up in the owned
// games feed but are tools or SDKs rather than games.
var DefaultExcludedAppIDs = []string{"218620", "359050", "365720", "469820", "489830", "1053680"}

// Config holds all application configuration
type Config struct {
	Steam    SteamConfig    `koanf:"steam"`
	Database DatabaseConfig `koanf:"database"`
	Sync     SyncConfig     `koanf:"sync"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// SteamConfig holds Steam Web API settings
type SteamConfig struct {
	APIKey     string        `koanf:"api_key"`
	UserID     string        `koanf:"user_id"`
	BaseURL    string        `koanf:"base_url"`
	Timeout    time.Duration `koanf:"timeout"`
	MaxRetries int           `koanf:"max_retries"`
	// RequestsPerSecond enables a client-side token bucket when > 0.
	RequestsPerSecond float64  `koanf:"requests_per_second"`
	ExcludedAppIDs    []string `koanf:"excluded_app_ids"`
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = use NumCPU
	// CheckpointInterval flushes the WAL periodically; 0 disables.
	CheckpointInterval time.Duration `koanf:"checkpoint_interval"`
}

// SyncConfig holds recent-activity sync settings
type SyncConfig struct {
	Enabled        bool          `koanf:"enabled"`
	Interval       time.Duration `koanf:"interval"`
	RunOnStartup   bool          `koanf:"run_on_startup"`
	RateLimitPause time.Duration `koanf:"rate_limit_pause"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CardCacheTTL    time.Duration `koanf:"card_cache_ttl"`
}

// SecurityConfig holds the trigger secret and HTTP hardening settings
type SecurityConfig struct {
	CronSecret        string        `koanf:"cron_secret"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}
