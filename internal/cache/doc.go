// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

/*
Package cache provides a thread-safe in-memory TTL cache.

The HTTP API keeps the aggregated card list here so repeated reads skip the
store. Entries expire after Server.CardCacheTTL, and the whole cache is
cleared whenever a sync or a manual entry writes games.

Clear advances a generation counter. A reader that loads from the store
records the generation first and stores with SetIfGeneration, so a load that
overlaps an invalidation is dropped instead of cached:

	gen := c.Generation()
	all := cards.BuildAllCards(rows)
	c.SetIfGeneration("cards:all", all, gen)

GetStats returns hits, misses, evictions and the live key count; the health
endpoint reports them with Stats.HitRate.
*/
package cache
