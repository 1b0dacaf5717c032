// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListCategories returns all forum boards.
func (a *API) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.categories.All())
}

// GetCategory returns one board by slug.
func (a *API) GetCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	cat := a.categories.BySlug(slug)
	if cat == nil {
		writeError(w, http.StatusNotFound, "板块不存在")
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

// GetCategoryStats returns the counter subset of one board.
func (a *API) GetCategoryStats(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if a.categories.BySlug(slug) == nil {
		writeError(w, http.StatusNotFound, "板块不存在")
		return
	}
	writeJSON(w, http.StatusOK, a.categories.Stats(slug))
}
