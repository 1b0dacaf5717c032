// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"deepflood/internal/level"
	"deepflood/internal/models"
)

type commentRequest struct {
	Content  string     `json:"content"`
	ParentID *uuid.UUID `json:"parentId,omitempty"`
}

// ListComments returns the top-level comments of a post.
func (a *API) ListComments(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if a.posts.ByID(id) == nil {
		writeError(w, http.StatusNotFound, "帖子不存在")
		return
	}
	writeJSON(w, http.StatusOK, a.comments.ByPostID(id))
}

// CreateComment adds a comment (or a reply, when parentId is set) to a
// post, bumps the post's reply counter and grants the reply reward.
func (a *API) CreateComment(w http.ResponseWriter, r *http.Request) {
	user := a.users.Current()
	if user == nil {
		writeError(w, http.StatusUnauthorized, "未登录")
		return
	}

	postID, ok := parseID(w, r)
	if !ok {
		return
	}
	if a.posts.ByID(postID) == nil {
		writeError(w, http.StatusNotFound, "帖子不存在")
		return
	}

	var req commentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateComment(req.Content); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if req.ParentID != nil {
		parent := a.comments.ByID(*req.ParentID)
		if parent == nil || parent.PostID != postID {
			writeError(w, http.StatusBadRequest, "回复的评论不存在")
			return
		}
	}

	comment := a.comments.Add(r.Context(), models.Comment{
		PostID:   postID,
		Content:  req.Content,
		ParentID: req.ParentID,
		Author:   authorOf(user),
	})

	a.posts.IncrementReplyCount(r.Context(), postID)
	a.users.AwardDrumsticks(r.Context(), level.RewardReply)

	writeJSON(w, http.StatusCreated, comment)
}

// ListReplies returns the direct replies of a comment.
func (a *API) ListReplies(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if a.comments.ByID(id) == nil {
		writeError(w, http.StatusNotFound, "评论不存在")
		return
	}
	writeJSON(w, http.StatusOK, a.comments.RepliesByCommentID(id))
}

// UpdateComment edits a comment's content. Only the author may edit.
func (a *API) UpdateComment(w http.ResponseWriter, r *http.Request) {
	user := a.users.Current()
	if user == nil {
		writeError(w, http.StatusUnauthorized, "未登录")
		return
	}

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	existing := a.comments.ByID(id)
	if existing == nil {
		writeError(w, http.StatusNotFound, "评论不存在")
		return
	}
	if !user.Owns(existing.Author.ID) {
		writeError(w, http.StatusForbidden, "只能编辑自己的评论")
		return
	}

	var req commentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateComment(req.Content); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	writeJSON(w, http.StatusOK, a.comments.Update(r.Context(), id, req.Content))
}

// DeleteComment removes a comment and its direct replies. Only the author
// may delete.
func (a *API) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := a.users.Current()
	if user == nil {
		writeError(w, http.StatusUnauthorized, "未登录")
		return
	}

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	existing := a.comments.ByID(id)
	if existing == nil {
		writeError(w, http.StatusNotFound, "评论不存在")
		return
	}
	if !user.Owns(existing.Author.ID) {
		writeError(w, http.StatusForbidden, "只能删除自己的评论")
		return
	}

	a.comments.Delete(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// LikeComment marks the comment liked by the session user. Liking twice
// is a no-op.
func (a *API) LikeComment(w http.ResponseWriter, r *http.Request) {
	a.setLike(w, r, true)
}

// UnlikeComment removes the session user's like, if present.
func (a *API) UnlikeComment(w http.ResponseWriter, r *http.Request) {
	a.setLike(w, r, false)
}

func (a *API) setLike(w http.ResponseWriter, r *http.Request, like bool) {
	user := a.users.Current()
	if user == nil {
		writeError(w, http.StatusUnauthorized, "未登录")
		return
	}

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var comment *models.Comment
	if like {
		comment = a.comments.Like(r.Context(), id, user.ID)
	} else {
		comment = a.comments.Unlike(r.Context(), id, user.ID)
	}
	if comment == nil {
		writeError(w, http.StatusNotFound, "评论不存在")
		return
	}

	writeJSON(w, http.StatusOK, comment)
}
