// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures held by the forum stores and
// serialized into the per-store state snapshots. Field names in the JSON
// tags follow the snapshot layout written by the original web client, so
// existing saved state keeps loading.
package models

import (
	"github.com/google/uuid"
)

// Author is the denormalized author summary embedded in posts and comments.
type Author struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
}

// Post is a forum topic. Timestamps are relative display labels
// (e.g. "刚刚", "2小时前"), not absolute instants — ordering over them is
// derived by the reltime heuristic at read time.
type Post struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Topic      string    `json:"topic"` // category slug, soft reference
	Author     Author    `json:"author"`
	ReplyCount int       `json:"replyCount"`
	ViewCount  int       `json:"viewCount"`
	CreatedAt  string    `json:"createdAt"`
	UpdatedAt  string    `json:"updatedAt"`
	IsSticky   bool      `json:"isSticky,omitempty"`
	IsDraft    bool      `json:"isDraft,omitempty"`
}
