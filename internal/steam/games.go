// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package steam

import (
	"context"
	"fmt"
)

// GetOwnedGames returns every game owned by the account, including free
// games with playtime. Only this feed carries playtime_disconnected and
// rtime_last_played.
func (c *Client) GetOwnedGames(ctx context.Context) ([]GameRecord, error) {
	params := c.accountParams()
	params.Set("include_appinfo", "true")
	params.Set("include_played_free_games", "true")

	var resp ownedGamesResponse
	if err := c.getJSON(ctx, "GetOwnedGames", "IPlayerService/GetOwnedGames/v0001/", params, &resp); err != nil {
		return nil, err
	}
	return resp.Response.Games, nil
}

// GetRecentlyPlayedGames returns games played in the last two weeks. Unlike
// GetOwnedGames this includes games borrowed through Steam Family Sharing.
func (c *Client) GetRecentlyPlayedGames(ctx context.Context) ([]GameRecord, error) {
	var resp recentlyPlayedResponse
	if err := c.getJSON(ctx, "GetRecentlyPlayedGames", "IPlayerService/GetRecentlyPlayedGames/v0001/", c.accountParams(), &resp); err != nil {
		return nil, err
	}
	return resp.Response.Games, nil
}

// RecentlyActiveGames returns the account's recently active snapshot: owned
// games with recent playtime plus shared-library games from the
// recently-played feed.
func (c *Client) RecentlyActiveGames(ctx context.Context) ([]GameRecord, error) {
	owned, err := c.GetOwnedGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owned games: %w", err)
	}
	recent, err := c.GetRecentlyPlayedGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recently played games: %w", err)
	}
	return MergeRecentlyActive(owned, recent), nil
}

// MergeRecentlyActive keeps owned games with non-zero recent playtime, then
// appends recently-played games not already present. Owned entries win when
// both feeds carry a game. Input order is preserved.
func MergeRecentlyActive(owned, recent []GameRecord) []GameRecord {
	seen := make(map[int64]struct{}, len(owned)+len(recent))
	merged := make([]GameRecord, 0, len(recent))

	for _, feed := range [][]GameRecord{owned, recent} {
		for i := range feed {
			g := feed[i]
			if g.RecentMinutes() <= 0 {
				continue
			}
			if _, ok := seen[g.AppID]; ok {
				continue
			}
			seen[g.AppID] = struct{}{}
			merged = append(merged, g)
		}
	}
	return merged
}
