// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// SecurityEvent is an access-control decision worth auditing.
type SecurityEvent struct {
	// Event names what happened, e.g. "bearer_rejected".
	Event     string
	Path      string
	IPAddress string
	UserAgent string
	Success   bool
	// Reason is sanitized before it is written.
	Reason  string
	Details map[string]string
}

// SecurityLogger writes access-control events with sensitive values masked.
type SecurityLogger struct {
	logger zerolog.Logger
}

// NewSecurityLogger creates a security logger over the global logger.
func NewSecurityLogger() *SecurityLogger {
	return &SecurityLogger{
		logger: With().Str("component", "auth").Logger(),
	}
}

// NewSecurityLoggerWithLogger creates a security logger with a custom zerolog logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSecurityLoggerWithLogger(logger zerolog.Logger) *SecurityLogger {
	return &SecurityLogger{
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

// LogEvent writes event at info level, or warn when it failed.
func (l *SecurityLogger) LogEvent(event *SecurityEvent) {
	e := l.logger.Info()
	status := "success"
	if !event.Success {
		e = l.logger.Warn()
		status = "failed"
	}
	e = e.Str("event", event.Event).Str("status", status)

	if event.Path != "" {
		e = e.Str("path", event.Path)
	}
	if event.IPAddress != "" {
		e = e.Str("ip", event.IPAddress)
	}
	if event.UserAgent != "" {
		e = e.Str("user_agent", truncateString(event.UserAgent, 100))
	}
	if event.Reason != "" && !event.Success {
		e = e.Str("reason", SanitizeError(event.Reason))
	}
	for k, v := range event.Details {
		e = e.Str(k, SanitizeValue(k, v))
	}

	e.Msg("")
}

// LogBearerRejected records a request turned away by the bearer check.
func (l *SecurityLogger) LogBearerRejected(path, ip, userAgent, reason string) {
	l.LogEvent(&SecurityEvent{
		Event:     "bearer_rejected",
		Path:      path,
		IPAddress: ip,
		UserAgent: userAgent,
		Reason:    reason,
	})
}

// LogBearerAccepted records an authorized trigger or write.
func (l *SecurityLogger) LogBearerAccepted(path, ip string) {
	l.LogEvent(&SecurityEvent{
		Event:     "bearer_accepted",
		Path:      path,
		IPAddress: ip,
		Success:   true,
	})
}

// SanitizeToken masks a token, showing only first and last 4 characters.
// Example: "eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9..." -> "eyJh...kpXV"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeError replaces messages that mention credentials and truncates
// the rest.
func SanitizeError(err string) string {
	sensitivePatterns := []string{
		"password",
		"secret",
		"token",
		"key",
		"bearer",
		"authorization",
		"cookie",
	}

	lowerErr := strings.ToLower(err)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lowerErr, pattern) {
			return "authentication error"
		}
	}
	return truncateString(err, 200)
}

// sensitiveKeys are detail keys whose values are always masked.
var sensitiveKeys = map[string]bool{
	"token":         true,
	"secret":        true,
	"cron_secret":   true,
	"key":           true,
	"api_key":       true,
	"apikey":        true,
	"authorization": true,
	"bearer":        true,
	"cookie":        true,
}

// SanitizeValue masks value when key names a credential.
func SanitizeValue(key, value string) string {
	if sensitiveKeys[strings.ToLower(key)] {
		return SanitizeToken(value)
	}
	return value
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
