// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package steam

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// GameRecord is one entry of the owned-games or recently-played feed.
// Optional fields are pointers: a nil PlaytimeTwoWeeks means the game has
// no activity in the trailing two-week window.
type GameRecord struct {
	AppID                int64  `json:"appid"`
	Name                 string `json:"name"`
	PlaytimeForever      int    `json:"playtime_forever"`
	PlaytimeTwoWeeks     *int   `json:"playtime_2weeks,omitempty"`
	PlaytimeDisconnected *int   `json:"playtime_disconnected,omitempty"`
	RTimeLastPlayed      *int64 `json:"rtime_last_played,omitempty"`
}

// ID returns the app ID in the string form used as a game ID in the store.
func (g *GameRecord) ID() string {
	return strconv.FormatInt(g.AppID, 10)
}

// RecentMinutes returns playtime_2weeks, treating absence as zero.
func (g *GameRecord) RecentMinutes() int {
	if g.PlaytimeTwoWeeks == nil {
		return 0
	}
	return *g.PlaytimeTwoWeeks
}

// PlayerAchievement is a user-scoped achievement from GetPlayerAchievements.
type PlayerAchievement struct {
	APIName     string `json:"apiname"`
	Achieved    int    `json:"achieved"`
	UnlockTime  int64  `json:"unlocktime"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GlobalAchievement is a global completion rate from
// GetGlobalAchievementPercentagesForApp. Name matches PlayerAchievement.APIName.
type GlobalAchievement struct {
	Name    string  `json:"name"`
	Percent Percent `json:"percent"`
}

// Percent decodes a completion percentage sent either as a JSON number or
// as a numeric string.
type Percent float64

// UnmarshalJSON implements json.Unmarshaler.
func (p *Percent) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*p = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid percent %q: %w", s, err)
		}
		*p = Percent(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = Percent(f)
	return nil
}

type ownedGamesResponse struct {
	Response struct {
		GameCount int          `json:"game_count"`
		Games     []GameRecord `json:"games"`
	} `json:"response"`
}

type recentlyPlayedResponse struct {
	Response struct {
		TotalCount int          `json:"total_count"`
		Games      []GameRecord `json:"games"`
	} `json:"response"`
}

type playerAchievementsResponse struct {
	PlayerStats struct {
		SteamID      string              `json:"steamID"`
		GameName     string              `json:"gameName"`
		Achievements []PlayerAchievement `json:"achievements"`
		Success      bool                `json:"success"`
		Error        string              `json:"error"`
	} `json:"playerstats"`
}

type globalAchievementsResponse struct {
	AchievementPercentages struct {
		Achievements []GlobalAchievement `json:"achievements"`
	} `json:"achievementpercentages"`
}
