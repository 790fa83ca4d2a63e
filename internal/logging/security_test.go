// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSanitizeToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"short", "***"},
		{"exactlytwelv", "***"},
		{"1234567890123456", "1234...3456"},
	}

	for _, tt := range tests {
		result := SanitizeToken(tt.input)
		if result != tt.expected {
			t.Errorf("SanitizeToken(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestSanitizeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"missing authorization header", "authentication error"},
		{"wrong Bearer value", "authentication error"},
		{"secret mismatch", "authentication error"},
		{"malformed header", "malformed header"},
		{strings.Repeat("x", 250), strings.Repeat("x", 200) + "..."},
	}

	for _, tt := range tests {
		if got := SanitizeError(tt.input); got != tt.expected {
			t.Errorf("SanitizeError(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSanitizeValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key, value, expected string
	}{
		{"api_key", "ABCDEF0123456789ABCD", "ABCD...ABCD"},
		{"Cron_Secret", "short", "***"},
		{"route", "/api/cron", "/api/cron"},
	}

	for _, tt := range tests {
		if got := SanitizeValue(tt.key, tt.value); got != tt.expected {
			t.Errorf("SanitizeValue(%q, %q) = %q, want %q", tt.key, tt.value, got, tt.expected)
		}
	}
}

func TestSecurityLoggerBearerRejected(t *testing.T) {
	var buf bytes.Buffer
	secLog := NewSecurityLoggerWithLogger(zerolog.New(&buf))

	secLog.LogBearerRejected("/api/cron", "203.0.113.7", strings.Repeat("a", 150), "invalid bearer token")

	output := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"event":"bearer_rejected"`,
		`"status":"failed"`,
		`"path":"/api/cron"`,
		`"ip":"203.0.113.7"`,
		`"reason":"authentication error"`,
		`"component":"auth"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %s: %s", want, output)
		}
	}
	if strings.Contains(output, strings.Repeat("a", 101)) {
		t.Errorf("user agent not truncated: %s", output)
	}
}

func TestSecurityLoggerBearerAccepted(t *testing.T) {
	var buf bytes.Buffer
	secLog := NewSecurityLoggerWithLogger(zerolog.New(&buf))

	secLog.LogBearerAccepted("/api/v1/sync", "198.51.100.2")

	output := buf.String()
	if !strings.Contains(output, `"level":"info"`) || !strings.Contains(output, `"status":"success"`) {
		t.Errorf("unexpected output: %s", output)
	}
	if strings.Contains(output, "reason") {
		t.Errorf("successful event should carry no reason: %s", output)
	}
}

func TestSecurityLoggerMasksDetails(t *testing.T) {
	var buf bytes.Buffer
	secLog := NewSecurityLoggerWithLogger(zerolog.New(&buf))

	secLog.LogEvent(&SecurityEvent{
		Event:   "custom",
		Success: true,
		Details: map[string]string{"token": "0123456789abcdefXYZ", "route": "/api/cron"},
	})

	output := buf.String()
	if strings.Contains(output, "0123456789abcdefXYZ") || !strings.Contains(output, "0123...fXYZ") {
		t.Errorf("token not masked: %s", output)
	}
	if !strings.Contains(output, `"route":"/api/cron"`) {
		t.Errorf("route missing: %s", output)
	}
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	if got := truncateString("abc", 5); got != "abc" {
		t.Errorf("truncateString short = %q", got)
	}
	if got := truncateString("abcdef", 3); got != "abc..." {
		t.Errorf("truncateString long = %q", got)
	}
}
