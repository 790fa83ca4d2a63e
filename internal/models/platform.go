// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package models

import "cmp"

// Platform identifies where a game record came from.
type Platform string

const (
	PlatformSteam  Platform = "Steam"
	PlatformXbox   Platform = "Xbox"
	PlatformSwitch Platform = "Switch"
)

// Platforms lists every known platform.
var Platforms = []Platform{PlatformSteam, PlatformXbox, PlatformSwitch}

// PlatformPriority orders platforms by how authoritative their record is when a
// game exists on several. Platforms not listed rank after all listed ones and
// keep their input order.
var PlatformPriority = []Platform{PlatformSteam, PlatformXbox}

// SyncedPlatform is the only platform written by the sync engine.
const SyncedPlatform = PlatformSteam

// Valid reports whether p is a known platform.
func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// Manual reports whether records for p are entered by hand.
func (p Platform) Manual() bool {
	return p.Valid() && p != SyncedPlatform
}

// Rank returns p's position in PlatformPriority, or len(PlatformPriority) if unlisted.
func (p Platform) Rank() int {
	for i, candidate := range PlatformPriority {
		if p == candidate {
			return i
		}
	}
	return len(PlatformPriority)
}

// ComparePlatformPriority orders a before b when a is more authoritative.
// Suitable for slices.SortStableFunc.
func ComparePlatformPriority(a, b Platform) int {
	return cmp.Compare(a.Rank(), b.Rank())
}
