// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package cards

import (
	"strings"

	"github.com/tomtom215/questlog/internal/models"
)

// PriorityIndex returns the index of the most authoritative row. Ties in
// platform rank go to the earliest row.
func PriorityIndex(rows []models.GameCardRow) int {
	best := 0
	for i := 1; i < len(rows); i++ {
		if models.ComparePlatformPriority(rows[i].Platform, rows[best].Platform) < 0 {
			best = i
		}
	}
	return best
}

// BuildCard aggregates rows that share one game ID. rows must not be empty.
func BuildCard(rows []models.GameCardRow) models.GameCard {
	priority := rows[PriorityIndex(rows)]

	card := models.GameCard{
		GameID:         priority.ID,
		Platform:       priority.Platform,
		Platforms:      make([]models.Platform, 0, len(rows)),
		Name:           priority.Name,
		TimeLastPlayed: priority.TimeLastPlayed,
		Playtimes: models.Playtimes{
			Recent: priority.PlaytimeRecent,
		},
		AchievementCounts: models.AchievementCounts{
			Total:     priority.TotalAchievements,
			Completed: priority.CompletedAchievements,
		},
	}

	for i := range rows {
		card.Playtimes.Total += rows[i].PlaytimeTotal
		card.Platforms = append(card.Platforms, rows[i].Platform)
	}
	return card
}

// BuildAllCards groups rows by game ID in first-seen order and builds one
// card per group.
func BuildAllCards(rows []models.GameCardRow) []models.GameCard {
	var order []string
	groups := make(map[string][]models.GameCardRow)
	for _, r := range rows {
		if _, ok := groups[r.ID]; !ok {
			order = append(order, r.ID)
		}
		groups[r.ID] = append(groups[r.ID], r)
	}

	cards := make([]models.GameCard, 0, len(order))
	for _, id := range order {
		cards = append(cards, BuildCard(groups[id]))
	}
	return cards
}

// CompletionPercent returns the share of completed achievements, 0-100.
// Games without achievements report 0.
func CompletionPercent(card *models.GameCard) float64 {
	if card.AchievementCounts.Total == 0 {
		return 0
	}
	return float64(card.AchievementCounts.Completed) / float64(card.AchievementCounts.Total) * 100
}

// Filter selects which cards a listing shows. Zero values match everything.
type Filter struct {
	Platform models.Platform
	Query    string
}

// FilterCards returns the cards that have a row on f.Platform and whose name
// contains f.Query, case-insensitively. The input slice is not modified.
func FilterCards(cards []models.GameCard, f Filter) []models.GameCard {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.GameCard, 0, len(cards))
	for i := range cards {
		if f.Platform != "" && !cards[i].HasPlatform(f.Platform) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(cards[i].Name), query) {
			continue
		}
		out = append(out, cards[i])
	}
	return out
}
