// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package level maps drumstick balances (the forum's currency units) to
// discrete user levels and computes progression toward the next level.
package level

import "fmt"

// Requirements holds the drumstick threshold for each level, indexed by
// level number. A user's level is the highest index whose threshold does
// not exceed their balance.
var Requirements = [7]int{0, 100, 200, 300, 400, 500, 600}

const (
	// MaxLevel is the highest regular level.
	MaxLevel = 6

	// SuperThreshold marks the overflow tier: balances strictly above it
	// report level 6 with the Super flag set. The flag is a presentation
	// signal only; the numeric level stays 6.
	SuperThreshold = 666

	// DefaultDrumsticks is the starting balance of a freshly created account.
	DefaultDrumsticks = 90
)

// Drumstick awards granted for participation, and the per-day award cap.
const (
	RewardPost       = 5
	RewardReply      = 20
	RewardDailyLimit = 20
)

// UserLevel is the derived level descriptor. It is computed on demand from
// a drumstick balance and never stored.
type UserLevel struct {
	Level      int  `json:"level"`
	Drumsticks int  `json:"drumsticks"`
	IsSuper    bool `json:"isSuper"`
}

// NextInfo describes the next level and the drumstick threshold required
// to reach it.
type NextInfo struct {
	Required int `json:"required"`
	Level    int `json:"level"`
}

// Calculate maps a drumstick balance to its level descriptor.
func Calculate(drumsticks int) UserLevel {
	if drumsticks > SuperThreshold {
		return UserLevel{Level: MaxLevel, Drumsticks: drumsticks, IsSuper: true}
	}

	lvl := 0
	for i := MaxLevel; i >= 0; i-- {
		if drumsticks >= Requirements[i] {
			lvl = i
			break
		}
	}
	return UserLevel{Level: lvl, Drumsticks: drumsticks}
}

// NextLevelInfo returns the next level and its threshold for the given
// balance. The second return value is false when there is no next level:
// the user is already at level 6 or in the overflow tier.
func NextLevelInfo(drumsticks int) (NextInfo, bool) {
	current := Calculate(drumsticks)
	if current.IsSuper || current.Level >= MaxLevel {
		return NextInfo{}, false
	}

	next := current.Level + 1
	return NextInfo{Required: Requirements[next], Level: next}, true
}

// Display returns the badge text for a level, e.g. "Lv3".
func Display(l UserLevel) string {
	return fmt.Sprintf("Lv%d", l.Level)
}
