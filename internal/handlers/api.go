// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON HTTP API of the forum.
package handlers

import (
	"deepflood/internal/ai"
	"deepflood/internal/level"
	"deepflood/internal/session"
	"deepflood/internal/store"
)

// API bundles the stores and services the endpoint handlers operate on.
type API struct {
	posts      *store.PostsStore
	comments   *store.CommentsStore
	categories *store.CategoriesStore
	users      *store.UsersStore
	sessions   *session.Store
	assistant  *ai.Assistant

	// demoLevels maps fixture author ids to their deterministic level
	// descriptors, shown on profile pages of non-session users.
	demoLevels map[string]level.UserLevel
}

// New creates the API handler set.
func New(
	posts *store.PostsStore,
	comments *store.CommentsStore,
	categories *store.CategoriesStore,
	users *store.UsersStore,
	sessions *session.Store,
	assistant *ai.Assistant,
	demoLevels map[string]level.UserLevel,
) *API {
	return &API{
		posts:      posts,
		comments:   comments,
		categories: categories,
		users:      users,
		sessions:   sessions,
		assistant:  assistant,
		demoLevels: demoLevels,
	}
}
