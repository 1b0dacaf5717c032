// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"deepflood/internal/level"
	"deepflood/internal/markdown"
	"deepflood/internal/models"
	"deepflood/internal/store"
)

// postRequest carries the author-editable fields of a post. The sticky flag
// is deliberately absent: pinning is a moderation decision, not something a
// post author can request.
type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Topic   string `json:"topic"`
}

// postDetail augments a post with its rendered Markdown body.
type postDetail struct {
	models.Post
	ContentHTML string `json:"contentHtml"`
}

// ListPosts returns all published posts, sticky first, then most recent.
func (a *API) ListPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.posts.List())
}

// CreatePost publishes a new post authored by the session user and grants
// the posting reward.
func (a *API) CreatePost(w http.ResponseWriter, r *http.Request) {
	user := a.users.Current()
	if user == nil {
		writeError(w, http.StatusUnauthorized, "未登录")
		return
	}

	var req postRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validatePost(req.Title, req.Content, req.Topic); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	post := a.posts.Add(r.Context(), models.Post{
		Title:   req.Title,
		Content: req.Content,
		Topic:   req.Topic,
		Author:  authorOf(user),
	})

	a.categories.RecordNewPost(req.Topic)
	a.users.AwardDrumsticks(r.Context(), level.RewardPost)

	writeJSON(w, http.StatusCreated, post)
}

// GetPost returns a single post with its rendered body, counting the view.
func (a *API) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	post := a.posts.IncrementViewCount(r.Context(), id)
	if post == nil {
		writeError(w, http.StatusNotFound, "帖子不存在")
		return
	}

	html, err := markdown.ToHTML(post.Content)
	if err != nil {
		slog.Error("markdown render failed", "post", post.ID, "error", err)
		html = ""
	}

	writeJSON(w, http.StatusOK, postDetail{Post: *post, ContentHTML: html})
}

// UpdatePost edits a post. Only the author may edit.
func (a *API) UpdatePost(w http.ResponseWriter, r *http.Request) {
	user := a.users.Current()
	if user == nil {
		writeError(w, http.StatusUnauthorized, "未登录")
		return
	}

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	existing := a.posts.ByID(id)
	if existing == nil {
		writeError(w, http.StatusNotFound, "帖子不存在")
		return
	}
	if !user.Owns(existing.Author.ID) {
		writeError(w, http.StatusForbidden, "只能编辑自己的帖子")
		return
	}

	var req postRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validatePost(req.Title, req.Content, req.Topic); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	updated := a.posts.Update(r.Context(), id, store.PostUpdate{
		Title:   &req.Title,
		Content: &req.Content,
		Topic:   &req.Topic,
	})
	if updated == nil {
		writeError(w, http.StatusNotFound, "帖子不存在")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeletePost removes a post. Only the author may delete.
func (a *API) DeletePost(w http.ResponseWriter, r *http.Request) {
	user := a.users.Current()
	if user == nil {
		writeError(w, http.StatusUnauthorized, "未登录")
		return
	}

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	existing := a.posts.ByID(id)
	if existing == nil {
		writeError(w, http.StatusNotFound, "帖子不存在")
		return
	}
	if !user.Owns(existing.Author.ID) {
		writeError(w, http.StatusForbidden, "只能删除自己的帖子")
		return
	}

	a.posts.Delete(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// SearchPosts performs a keyword search. An empty query matches nothing.
func (a *API) SearchPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, a.posts.Search(q))
}

// PostsByTopic lists the posts of one category.
func (a *API) PostsByTopic(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if a.categories.BySlug(slug) == nil {
		writeError(w, http.StatusNotFound, "板块不存在")
		return
	}
	writeJSON(w, http.StatusOK, a.posts.ByTopic(slug))
}

// ListDrafts returns the session user's saved drafts.
func (a *API) ListDrafts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.posts.Drafts())
}

// SaveDraft stores a draft. Drafts skip validation: partial content is the
// point of saving one.
func (a *API) SaveDraft(w http.ResponseWriter, r *http.Request) {
	user := a.users.Current()
	if user == nil {
		writeError(w, http.StatusUnauthorized, "未登录")
		return
	}

	var req postRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	draft := a.posts.SaveDraft(r.Context(), models.Post{
		Title:   req.Title,
		Content: req.Content,
		Topic:   req.Topic,
		Author:  authorOf(user),
	})
	writeJSON(w, http.StatusCreated, draft)
}

// DeleteDraft discards a saved draft.
func (a *API) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if !a.posts.DeleteDraft(r.Context(), id) {
		writeError(w, http.StatusNotFound, "草稿不存在")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseID extracts and validates the {id} route parameter.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "无效的ID")
		return uuid.Nil, false
	}
	return id, true
}

// authorOf builds the denormalized author summary of the session user.
func authorOf(u *models.User) models.Author {
	return models.Author{ID: u.ID, Name: u.Username, Avatar: u.AvatarURL}
}
