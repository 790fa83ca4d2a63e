// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package models

import "time"

// Game is a persisted per-platform game record. Playtimes are in minutes.
type Game struct {
	ID             string     `json:"id"`
	Platform       Platform   `json:"platform"`
	Name           string     `json:"name"`
	PlaytimeTotal  int        `json:"playtime_total"`
	PlaytimeRecent int        `json:"playtime_recent"`
	TimeLastPlayed *time.Time `json:"time_last_played,omitempty"`
}

// Achievement is a persisted achievement for one game on one platform.
// CompletedTime is nil if and only if Completed is false.
type Achievement struct {
	GameID           string     `json:"game_id"`
	GamePlatform     Platform   `json:"game_platform"`
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	GlobalCompletion float64    `json:"global_completion"`
	Completed        bool       `json:"completed"`
	CompletedTime    *time.Time `json:"completed_time,omitempty"`
}

// GameCardRow is a Game joined with its achievement counts, as read from the store.
type GameCardRow struct {
	Game
	TotalAchievements     int `json:"total_achievements"`
	CompletedAchievements int `json:"completed_achievements"`
}

// Playtimes holds a card's aggregated playtime in minutes.
type Playtimes struct {
	Total  int `json:"total"`
	Recent int `json:"recent"`
}

// AchievementCounts holds achievement totals for the card's priority record.
type AchievementCounts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// GameCard is the read-time aggregate of every platform record sharing a game ID.
type GameCard struct {
	GameID            string            `json:"game_id"`
	Platform          Platform          `json:"platform"` // priority platform
	Platforms         []Platform        `json:"platforms"`
	Name              string            `json:"name"`
	Playtimes         Playtimes         `json:"playtimes"`
	TimeLastPlayed    *time.Time        `json:"time_last_played,omitempty"`
	AchievementCounts AchievementCounts `json:"achievement_counts"`
}

// HasPlatform reports whether the card includes a record for p.
func (c *GameCard) HasPlatform(p Platform) bool {
	for _, have := range c.Platforms {
		if have == p {
			return true
		}
	}
	return false
}

// GameDetail is a card plus the priority platform's achievements.
type GameDetail struct {
	Card         GameCard      `json:"card"`
	Achievements []Achievement `json:"achievements"`
}
