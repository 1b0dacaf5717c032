// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"deepflood/internal/models"
	"deepflood/internal/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Login authenticates the client. Credentials are accepted as-is and an
// account record is fabricated for them.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateLogin(req.Email, req.Password); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	user, err := a.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			writeError(w, http.StatusRequestTimeout, "登录已取消")
			return
		}
		slog.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "登录失败")
		return
	}

	a.issueSession(w, r, user)
	writeJSON(w, http.StatusOK, user)
}

// Register creates a fresh fabricated account and logs it in.
func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateRegister(req.Email, req.Username, req.Password, req.ConfirmPassword); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	user, err := a.users.Register(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			writeError(w, http.StatusRequestTimeout, "注册已取消")
			return
		}
		slog.Error("register failed", "error", err)
		writeError(w, http.StatusInternalServerError, "注册失败")
		return
	}

	a.issueSession(w, r, user)
	writeJSON(w, http.StatusCreated, user)
}

// Logout clears the account state and destroys the HTTP session.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	a.users.Logout(r.Context())

	if a.sessions != nil {
		if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
			slog.Error("session destroy failed", "error", err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me returns the logged-in account.
func (a *API) Me(w http.ResponseWriter, r *http.Request) {
	user := a.users.Current()
	if user == nil {
		writeError(w, http.StatusUnauthorized, "未登录")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// issueSession sets the session cookie for a freshly authenticated user.
// A nil session store (tests) skips cookie issuance.
func (a *API) issueSession(w http.ResponseWriter, r *http.Request, user *models.User) {
	if a.sessions == nil {
		return
	}
	_, err := a.sessions.Create(r.Context(), w, &session.Data{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
	}
}
