// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package level

import (
	"math/rand"

	"github.com/google/uuid"
)

// DemoUser pairs a fixture account id with its display name.
type DemoUser struct {
	ID   uuid.UUID
	Name string
}

// DemoUsers is the fixture roster shown on profile pages for accounts other
// than the session user. The ids are fixed: seeded posts and comments carry
// these authors, and level lookups key off the same ids, so the two must
// agree across restarts.
var DemoUsers = []DemoUser{
	{uuid.MustParse("00000000-0000-4000-8000-000000000001"), "walker"},
	{uuid.MustParse("00000000-0000-4000-8000-000000000002"), "jkoy"},
	{uuid.MustParse("00000000-0000-4000-8000-000000000003"), "yuzu"},
	{uuid.MustParse("00000000-0000-4000-8000-000000000004"), "David"},
	{uuid.MustParse("00000000-0000-4000-8000-000000000005"), "Si"},
	{uuid.MustParse("00000000-0000-4000-8000-000000000006"), "toboo"},
	{uuid.MustParse("00000000-0000-4000-8000-000000000007"), "Evan"},
}

// demoRanges lists the drumstick bands the generator draws from, one band
// per tier including the overflow tier.
var demoRanges = []struct{ min, max int }{
	{50, 99},   // Lv0
	{100, 199}, // Lv1
	{200, 299}, // Lv2
	{300, 399}, // Lv3
	{400, 499}, // Lv4
	{500, 599}, // Lv5
	{600, 666}, // Lv6
	{667, 999}, // Lv6 overflow
}

// DemoLevels generates level descriptors for the fixture roster, keyed by
// account id. The generator is seeded explicitly so fixtures and tests are
// deterministic; call it once during demo or test setup, never implicitly.
func DemoLevels(seed int64) map[string]UserLevel {
	rng := rand.New(rand.NewSource(seed))

	out := make(map[string]UserLevel, len(DemoUsers))
	for _, u := range DemoUsers {
		band := demoRanges[rng.Intn(len(demoRanges))]
		drumsticks := band.min + rng.Intn(band.max-band.min+1)
		out[u.ID.String()] = Calculate(drumsticks)
	}
	return out
}
