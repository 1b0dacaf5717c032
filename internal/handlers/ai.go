// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"
)

// --- AI writing assistant endpoints ---
//
// Every endpoint degrades gracefully: on provider failure the assistant
// returns its canned fallback text (and moderation allows the content), so
// these handlers never surface a 5xx for AI trouble.

type assistRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AssistPost suggests improvements for a post draft.
func (a *API) AssistPost(w http.ResponseWriter, r *http.Request) {
	var req assistRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "标题和内容不能都为空")
		return
	}

	writeJSON(w, http.StatusOK, a.assistant.PostSuggestions(r.Context(), req.Title, req.Content))
}

// AssistReply drafts candidate replies to a post.
func (a *API) AssistReply(w http.ResponseWriter, r *http.Request) {
	var req assistRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "内容不能为空")
		return
	}

	writeJSON(w, http.StatusOK, a.assistant.ReplySuggestions(r.Context(), req.Title, req.Content))
}

// AssistTitle proposes titles for draft content.
func (a *API) AssistTitle(w http.ResponseWriter, r *http.Request) {
	var req assistRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "内容不能为空")
		return
	}

	writeJSON(w, http.StatusOK, a.assistant.TitleSuggestions(r.Context(), req.Content))
}

// ModerateContent runs the advisory content check.
func (a *API) ModerateContent(w http.ResponseWriter, r *http.Request) {
	var req assistRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "内容不能为空")
		return
	}

	writeJSON(w, http.StatusOK, a.assistant.Moderate(r.Context(), req.Content))
}
