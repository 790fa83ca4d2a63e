// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package models

import (
	"math"
	"time"
)

// Severity tags a sync activity log line.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeverityWarn, SeverityError:
		return true
	}
	return false
}

// LogLine is one persisted sync activity entry.
type LogLine struct {
	Timestamp time.Time `json:"timestamp"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
}

// SyncResult summarizes one sync cycle.
type SyncResult struct {
	StartedAt           time.Time     `json:"started_at"`
	Duration            time.Duration `json:"duration"`
	GamesWritten        int           `json:"games_written"`
	AchievementsWritten int           `json:"achievements_written"`
	GamesWithoutStats   int           `json:"games_without_stats"`
	AchievementFailures int           `json:"achievement_failures"`
}

// ManualGameRequest is the body for entering a game on a manual platform.
type ManualGameRequest struct {
	ID             string     `json:"id" validate:"required,max=64"`
	Platform       Platform   `json:"platform" validate:"required,manual_platform"`
	Name           string     `json:"name" validate:"required,max=256"`
	PlaytimeTotal  int        `json:"playtime_total" validate:"gte=0"`
	PlaytimeRecent int        `json:"playtime_recent" validate:"gte=0,ltefield=PlaytimeTotal"`
	TimeLastPlayed *time.Time `json:"time_last_played,omitempty"`

	// Achievements is optional. Existing rows keep their name and description
	// and take the new completion state.
	Achievements []ManualAchievement `json:"achievements,omitempty" validate:"omitempty,max=500,unique=ID,dive"`
}

// ManualAchievement is one hand-entered achievement. CompletedTime must be
// set exactly when Completed is true.
type ManualAchievement struct {
	ID               string     `json:"id" validate:"required,max=128"`
	Name             string     `json:"name" validate:"required,max=256"`
	Description      string     `json:"description" validate:"max=1024"`
	GlobalCompletion float64    `json:"global_completion" validate:"gte=0,lte=100"`
	Completed        bool       `json:"completed"`
	CompletedTime    *time.Time `json:"completed_time,omitempty"`
}

// ManualEntry is what the manual entry route stored.
type ManualEntry struct {
	Game
	Achievements []Achievement `json:"achievements"`
}

// Game converts the request into a persisted game record.
func (r *ManualGameRequest) Game() Game {
	return Game{
		ID:             r.ID,
		Platform:       r.Platform,
		Name:           r.Name,
		PlaytimeTotal:  r.PlaytimeTotal,
		PlaytimeRecent: r.PlaytimeRecent,
		TimeLastPlayed: r.TimeLastPlayed,
	}
}

// AchievementRecords converts the request's achievements into rows owned by
// the requested game. It never returns nil.
func (r *ManualGameRequest) AchievementRecords() []Achievement {
	out := make([]Achievement, len(r.Achievements))
	for i, a := range r.Achievements {
		out[i] = Achievement{
			GameID:           r.ID,
			GamePlatform:     r.Platform,
			ID:               a.ID,
			Name:             a.Name,
			Description:      a.Description,
			GlobalCompletion: math.Round(a.GlobalCompletion*100) / 100,
			Completed:        a.Completed,
			CompletedTime:    a.CompletedTime,
		}
	}
	return out
}
