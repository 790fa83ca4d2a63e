// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package config

import (
	"fmt"
	"net/url"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateSteam(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateSync(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateSteam() error {
	if c.Steam.APIKey == "" {
		return fmt.Errorf("STEAM_API_KEY is required")
	}
	if c.Steam.UserID == "" {
		return fmt.Errorf("STEAM_USER_ID is required")
	}
	if err := validateHTTPURL(c.Steam.BaseURL, "STEAM_BASE_URL"); err != nil {
		return fmt.Errorf("STEAM_BASE_URL is invalid: %w", err)
	}
	if c.Steam.Timeout <= 0 {
		return fmt.Errorf("STEAM_TIMEOUT must be positive")
	}
	if c.Steam.MaxRetries < 0 {
		return fmt.Errorf("STEAM_MAX_RETRIES must not be negative")
	}
	if c.Steam.RequestsPerSecond < 0 {
		return fmt.Errorf("STEAM_REQUESTS_PER_SECOND must not be negative")
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	if c.Database.CheckpointInterval < 0 {
		return fmt.Errorf("DUCKDB_CHECKPOINT_INTERVAL must not be negative")
	}
	return nil
}

// validateSync validates sync settings (only the interval if the loop is enabled)
func (c *Config) validateSync() error {
	if c.Sync.RateLimitPause < 0 {
		return fmt.Errorf("SYNC_RATE_LIMIT_PAUSE must not be negative")
	}
	if !c.Sync.Enabled {
		return nil
	}
	if c.Sync.Interval <= 0 {
		return fmt.Errorf("SYNC_INTERVAL must be positive when SYNC_ENABLED=true")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.CardCacheTTL < 0 {
		return fmt.Errorf("CARD_CACHE_TTL must not be negative")
	}
	return nil
}

// validateSecurity validates the cron secret and rate limit bounds
func (c *Config) validateSecurity() error {
	if c.Security.CronSecret == "" {
		return fmt.Errorf("CRON_SECRET is required")
	}
	if len(c.Security.CronSecret) < 16 {
		return fmt.Errorf("CRON_SECRET must be at least 16 characters")
	}
	if strings.Contains(strings.ToUpper(c.Security.CronSecret), "REPLACE") {
		return fmt.Errorf("CRON_SECRET appears to be a placeholder value")
	}

	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateHTTPURL validates that a URL is properly formatted for HTTP/HTTPS services.
// Validates: scheme (http/https), host present, no paths or query params.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	// Allow trailing slash but no other paths
	if parsedURL.Path != "" && parsedURL.Path != "/" {
		return fmt.Errorf("%s should be base URL only, remove path: %s", fieldName, parsedURL.Path)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	return nil
}
