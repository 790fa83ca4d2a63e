// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package steam

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/goccy/go-json"
)

// GetPlayerAchievements returns the account's achievements for one app.
// Steam answers games without stats with success=false, either in a 200 or
// in a 4xx body; both are reported as ErrNoStats. Any other non-200 reply is
// returned as *StatusError. A game with stats but no achievements yields an
// empty, non-nil slice.
func (c *Client) GetPlayerAchievements(ctx context.Context, appID string) ([]PlayerAchievement, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("steamid", c.steamID)
	params.Set("appid", appID)
	params.Set("l", "english")

	var resp playerAchievementsResponse
	err := c.getJSON(ctx, "GetPlayerAchievements", "ISteamUserStats/GetPlayerAchievements/v0001/", params, &resp)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			if msg, ok := noStatsReply(statusErr); ok {
				return nil, fmt.Errorf("%w: app %s: status %d: %s", ErrNoStats, appID, statusErr.StatusCode, msg)
			}
		}
		return nil, err
	}

	if !resp.PlayerStats.Success {
		msg := resp.PlayerStats.Error
		if msg == "" {
			msg = "unsuccessful response"
		}
		return nil, fmt.Errorf("%w: app %s: %s", ErrNoStats, appID, msg)
	}

	if resp.PlayerStats.Achievements == nil {
		return []PlayerAchievement{}, nil
	}
	return resp.PlayerStats.Achievements, nil
}

// noStatsReply reports whether a failed reply is Steam's own "no stats"
// answer: a 4xx whose body is a playerstats object with success=false.
// Outages, bad keys and HTML error pages are not.
func noStatsReply(statusErr *StatusError) (string, bool) {
	if statusErr.StatusCode < 400 || statusErr.StatusCode >= 500 {
		return "", false
	}
	var body struct {
		PlayerStats *struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		} `json:"playerstats"`
	}
	if err := json.Unmarshal([]byte(statusErr.Body), &body); err != nil {
		return "", false
	}
	if body.PlayerStats == nil || body.PlayerStats.Success {
		return "", false
	}
	return body.PlayerStats.Error, true
}

// GetGlobalAchievementPercentages returns global unlock rates for one app.
// It does not depend on the account.
func (c *Client) GetGlobalAchievementPercentages(ctx context.Context, appID string) ([]GlobalAchievement, error) {
	params := url.Values{}
	params.Set("gameid", appID)
	params.Set("format", "json")

	var resp globalAchievementsResponse
	if err := c.getJSON(ctx, "GetGlobalAchievementPercentagesForApp", "ISteamUserStats/GetGlobalAchievementPercentagesForApp/v0002/", params, &resp); err != nil {
		return nil, err
	}

	if resp.AchievementPercentages.Achievements == nil {
		return []GlobalAchievement{}, nil
	}
	return resp.AchievementPercentages.Achievements, nil
}
