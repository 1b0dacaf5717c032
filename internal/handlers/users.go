// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"deepflood/internal/level"
	"deepflood/internal/store"
)

// levelResponse is the level descriptor shown on profile pages. NextLevel
// is omitted at the top level and in the overflow tier.
type levelResponse struct {
	level.UserLevel
	Display   string          `json:"display"`
	NextLevel *level.NextInfo `json:"nextLevel,omitempty"`
}

func newLevelResponse(l level.UserLevel) levelResponse {
	resp := levelResponse{UserLevel: l, Display: level.Display(l)}
	if next, ok := level.NextLevelInfo(l.Drumsticks); ok {
		resp.NextLevel = &next
	}
	return resp
}

// MyLevel returns the session user's level and progression.
func (a *API) MyLevel(w http.ResponseWriter, r *http.Request) {
	l, ok := a.users.Level()
	if !ok {
		writeError(w, http.StatusUnauthorized, "未登录")
		return
	}
	writeJSON(w, http.StatusOK, newLevelResponse(l))
}

// UserLevel returns the level of any known user: the session user by their
// real balance, fixture authors by their deterministic demo levels.
func (a *API) UserLevel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if user := a.users.Current(); user != nil && user.ID.String() == id {
		writeJSON(w, http.StatusOK, newLevelResponse(level.Calculate(user.Drumsticks)))
		return
	}

	if l, ok := a.demoLevels[id]; ok {
		writeJSON(w, http.StatusOK, newLevelResponse(l))
		return
	}

	writeError(w, http.StatusNotFound, "用户不存在")
}

type profileRequest struct {
	Username  *string `json:"username"`
	AvatarURL *string `json:"avatarUrl"`
	Bio       *string `json:"bio"`
}

// UpdateProfile applies a partial profile edit to the session user.
func (a *API) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Username != nil && *req.Username == "" {
		writeError(w, http.StatusBadRequest, "用户名不能为空")
		return
	}

	user := a.users.UpdateProfile(r.Context(), store.ProfileUpdate{
		Username:  req.Username,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
	})
	if user == nil {
		writeError(w, http.StatusUnauthorized, "未登录")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
