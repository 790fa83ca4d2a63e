// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package sync

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/questlog/internal/logging"
	"github.com/tomtom215/questlog/internal/models"
)

// ActivityLog receives one severity-tagged line per sync outcome.
type ActivityLog interface {
	Write(ctx context.Context, severity models.Severity, message string) error
}

// LogWriter persists activity lines. Implemented by *database.DB.
type LogWriter interface {
	WriteLog(ctx context.Context, severity models.Severity, message string) error
}

// DBActivityLog writes activity lines to the store and mirrors them to the
// process log.
type DBActivityLog struct {
	store  LogWriter
	logger zerolog.Logger
}

// NewDBActivityLog creates an ActivityLog backed by store.
func NewDBActivityLog(store LogWriter) *DBActivityLog {
	return &DBActivityLog{
		store:  store,
		logger: logging.WithComponent("sync"),
	}
}

// Write implements ActivityLog.
func (l *DBActivityLog) Write(ctx context.Context, severity models.Severity, message string) error {
	event := l.logger.Info()
	switch severity {
	case models.SeverityWarn:
		event = l.logger.Warn()
	case models.SeverityError:
		event = l.logger.Error()
	}
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		event = event.Str("correlation_id", id)
	}
	event.Msg(message)

	if err := l.store.WriteLog(ctx, severity, message); err != nil {
		l.logger.Warn().Err(err).Str("severity", string(severity)).Msg("Failed to persist activity log line")
		return err
	}
	return nil
}

// MemoryActivityLog keeps activity lines in memory.
type MemoryActivityLog struct {
	mu    sync.Mutex
	lines []models.LogLine
}

// Write implements ActivityLog.
func (l *MemoryActivityLog) Write(_ context.Context, severity models.Severity, message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, models.LogLine{
		Timestamp: time.Now().UTC(),
		Severity:  severity,
		Message:   message,
	})
	return nil
}

// Lines returns a copy of the recorded lines, oldest first.
func (l *MemoryActivityLog) Lines() []models.LogLine {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.LogLine, len(l.lines))
	copy(out, l.lines)
	return out
}
