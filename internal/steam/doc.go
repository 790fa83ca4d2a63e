// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

/*
Package steam is the Steam Web API client used by the recent-activity sync.

Endpoints:
  - IPlayerService/GetOwnedGames: owned library, with offline playtime
  - IPlayerService/GetRecentlyPlayedGames: two-week activity, including
    Family Sharing titles the account does not own
  - ISteamUserStats/GetPlayerAchievements: per-account unlocks
  - ISteamUserStats/GetGlobalAchievementPercentagesForApp: global unlock rates

Client handles HTTP 429 with exponential backoff and can apply a
client-side token bucket. CircuitBreakerClient wraps it with
sony/gobreaker; ErrNoStats replies do not count against the breaker.

Both types satisfy the sync package's Source interface.
*/
package steam
