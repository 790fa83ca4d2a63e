// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package cards

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/tomtom215/questlog/internal/models"
)

// ErrUnknownSort is returned for a sort key that is not recognized.
var ErrUnknownSort = errors.New("unknown sort key")

// GameSort orders a card listing.
type GameSort string

const (
	SortByName       GameSort = "name"
	SortByPlaytime   GameSort = "playtime"
	SortByLastPlayed GameSort = "lastPlayed"
	SortByCompletion GameSort = "completion"
)

// DefaultGameSort is used when a listing does not ask for an order.
const DefaultGameSort = SortByPlaytime

// AchievementSort orders a game's achievements.
type AchievementSort string

const (
	SortAchievementsByName             AchievementSort = "name"
	SortAchievementsByCompletedTime    AchievementSort = "completedTime"
	SortAchievementsByGlobalCompletion AchievementSort = "globalCompletion"
)

// DefaultAchievementSort is used when a detail view does not ask for an order.
const DefaultAchievementSort = SortAchievementsByGlobalCompletion

// SortCards sorts cards in place.
//
//   - name: ascending, ties by platform priority
//   - playtime: recent descending, then total descending, then name
//   - lastPlayed: newest first with never-played last, then name
//   - completion: cards with achievements first, percent descending, then
//     total playtime descending, then name
func SortCards(cards []models.GameCard, by GameSort) error {
	var compare func(a, b *models.GameCard) int
	switch by {
	case SortByName:
		compare = compareCardName
	case SortByPlaytime:
		compare = compareCardPlaytime
	case SortByLastPlayed:
		compare = compareCardLastPlayed
	case SortByCompletion:
		compare = compareCardCompletion
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSort, by)
	}

	slices.SortStableFunc(cards, func(a, b models.GameCard) int {
		return compare(&a, &b)
	})
	return nil
}

func compareCardName(a, b *models.GameCard) int {
	return cmp.Or(
		cmp.Compare(a.Name, b.Name),
		models.ComparePlatformPriority(a.Platform, b.Platform),
	)
}

func compareCardPlaytime(a, b *models.GameCard) int {
	return cmp.Or(
		cmp.Compare(b.Playtimes.Recent, a.Playtimes.Recent),
		cmp.Compare(b.Playtimes.Total, a.Playtimes.Total),
		compareCardName(a, b),
	)
}

func compareCardLastPlayed(a, b *models.GameCard) int {
	switch {
	case a.TimeLastPlayed == nil && b.TimeLastPlayed == nil:
		return compareCardName(a, b)
	case a.TimeLastPlayed == nil:
		return 1
	case b.TimeLastPlayed == nil:
		return -1
	}
	return cmp.Or(
		b.TimeLastPlayed.Compare(*a.TimeLastPlayed),
		compareCardName(a, b),
	)
}

func compareCardCompletion(a, b *models.GameCard) int {
	aHas := a.AchievementCounts.Total > 0
	bHas := b.AchievementCounts.Total > 0
	if aHas != bHas {
		if aHas {
			return -1
		}
		return 1
	}
	return cmp.Or(
		cmp.Compare(CompletionPercent(b), CompletionPercent(a)),
		cmp.Compare(b.Playtimes.Total, a.Playtimes.Total),
		compareCardName(a, b),
	)
}

// SortAchievements sorts achievements in place.
//
//   - name: ascending
//   - completedTime: completed first, oldest unlock first; uncompleted by
//     global completion descending
//   - globalCompletion: descending, completed first on ties, then name
func SortAchievements(achievements []models.Achievement, by AchievementSort) error {
	var compare func(a, b *models.Achievement) int
	switch by {
	case SortAchievementsByName:
		compare = compareAchievementName
	case SortAchievementsByCompletedTime:
		compare = compareAchievementCompletedTime
	case SortAchievementsByGlobalCompletion:
		compare = compareAchievementGlobal
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSort, by)
	}

	slices.SortStableFunc(achievements, func(a, b models.Achievement) int {
		return compare(&a, &b)
	})
	return nil
}

func compareAchievementName(a, b *models.Achievement) int {
	return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
}

func compareAchievementCompletedTime(a, b *models.Achievement) int {
	switch {
	case a.CompletedTime == nil && b.CompletedTime == nil:
		return cmp.Or(
			cmp.Compare(b.GlobalCompletion, a.GlobalCompletion),
			compareAchievementName(a, b),
		)
	case a.CompletedTime == nil:
		return 1
	case b.CompletedTime == nil:
		return -1
	}
	return cmp.Or(
		a.CompletedTime.Compare(*b.CompletedTime),
		compareAchievementName(a, b),
	)
}

func compareAchievementGlobal(a, b *models.Achievement) int {
	return cmp.Or(
		cmp.Compare(b.GlobalCompletion, a.GlobalCompletion),
		compareBool(b.Completed, a.Completed),
		compareAchievementName(a, b),
	)
}

// compareBool orders false before true.
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
