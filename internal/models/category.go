// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"github.com/google/uuid"
)

// Category is a forum board. Categories come from the seed fixture set and
// are mutated only through explicit stat updates; they are not persisted.
type Category struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	Color          string    `json:"color"`
	Icon           string    `json:"icon"`
	PostCount      int       `json:"postCount"`
	MemberCount    int       `json:"memberCount"`
	TodayPostCount int       `json:"todayPostCount"`
	IsActive       bool      `json:"isActive"`
	Moderators     []string  `json:"moderators"`
	Rules          []string  `json:"rules"`
}

// CategoryStats is the counter subset reported for a category.
type CategoryStats struct {
	PostCount      int `json:"postCount"`
	MemberCount    int `json:"memberCount"`
	TodayPostCount int `json:"todayPostCount"`
}

// Stats returns the category's counters.
func (c *Category) Stats() CategoryStats {
	return CategoryStats{
		PostCount:      c.PostCount,
		MemberCount:    c.MemberCount,
		TodayPostCount: c.TodayPostCount,
	}
}
