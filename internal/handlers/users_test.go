// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"deepflood/internal/level"
	"deepflood/internal/models"
	"deepflood/internal/store"
)

func TestMyLevel(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	env.api.MyLevel(w, httptest.NewRequest("GET", "/api/users/me/level", nil))
	wantError(t, w, http.StatusUnauthorized, "未登录")

	login(t, env)

	w = httptest.NewRecorder()
	env.api.MyLevel(w, httptest.NewRequest("GET", "/api/users/me/level", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var resp struct {
		Level      int    `json:"level"`
		Drumsticks int    `json:"drumsticks"`
		Display    string `json:"display"`
		NextLevel  *struct {
			Required int `json:"required"`
			Level    int `json:"level"`
		} `json:"nextLevel"`
	}
	decodeInto(t, w, &resp)

	// A fresh account sits at level 0 with 90 drumsticks, 10 away from Lv1.
	if resp.Level != 0 || resp.Drumsticks != level.DefaultDrumsticks {
		t.Errorf("level: %+v", resp)
	}
	if resp.Display != "Lv0" {
		t.Errorf("display: got %q, want %q", resp.Display, "Lv0")
	}
	if resp.NextLevel == nil || resp.NextLevel.Required != 100 || resp.NextLevel.Level != 1 {
		t.Errorf("nextLevel: %+v", resp.NextLevel)
	}
}

func TestUserLevelDemo(t *testing.T) {
	env := newTestEnv(t)

	// Roster ids are served from the deterministic demo set.
	id := level.DemoUsers[0].ID.String()
	w := httptest.NewRecorder()
	r := withURLParam(httptest.NewRequest("GET", "/api/users/"+id+"/level", nil), "id", id)
	env.api.UserLevel(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var resp struct {
		Drumsticks int    `json:"drumsticks"`
		Display    string `json:"display"`
	}
	decodeInto(t, w, &resp)
	if resp.Drumsticks == 0 || resp.Display == "" {
		t.Errorf("demo level response: %+v", resp)
	}
}

func TestUserLevelSeededAuthors(t *testing.T) {
	// Every author id a client can read off a seeded post must resolve
	// through the level endpoint.
	env := newTestEnv(t)
	store.Seed(context.Background(), env.posts, env.comments)

	for _, post := range env.posts.List() {
		id := post.Author.ID.String()
		w := httptest.NewRecorder()
		r := withURLParam(httptest.NewRequest("GET", "/api/users/"+id+"/level", nil), "id", id)
		env.api.UserLevel(w, r)

		if w.Code != http.StatusOK {
			t.Errorf("author %s (%s): got %d, want 200 (body %s)",
				post.Author.Name, id, w.Code, w.Body.String())
		}
	}
}

func TestUserLevelSessionUser(t *testing.T) {
	env := newTestEnv(t)
	u := login(t, env)

	w := httptest.NewRecorder()
	id := u.ID.String()
	env.api.UserLevel(w, withURLParam(httptest.NewRequest("GET", "/api/users/"+id+"/level", nil), "id", id))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var resp struct {
		Drumsticks int `json:"drumsticks"`
	}
	decodeInto(t, w, &resp)
	if resp.Drumsticks != u.Drumsticks {
		t.Errorf("drumsticks: got %d, want %d", resp.Drumsticks, u.Drumsticks)
	}
}

func TestUserLevelUnknown(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	env.api.UserLevel(w, withURLParam(httptest.NewRequest("GET", "/api/users/999/level", nil), "id", "999"))
	wantError(t, w, http.StatusNotFound, "用户不存在")
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	login(t, env)

	bio := "夜行者"
	w := httptest.NewRecorder()
	r := jsonRequest(t, "PUT", "/api/users/me", profileRequest{Bio: &bio})
	env.api.UpdateProfile(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var user models.User
	decodeInto(t, w, &user)
	if user.Bio != "夜行者" {
		t.Errorf("bio: got %q", user.Bio)
	}
	// Untouched fields survive a partial update.
	if user.Username != "walker" {
		t.Errorf("username: got %q, want %q", user.Username, "walker")
	}
}

func TestUpdateProfileEmptyUsername(t *testing.T) {
	env := newTestEnv(t)
	login(t, env)

	empty := ""
	w := httptest.NewRecorder()
	env.api.UpdateProfile(w, jsonRequest(t, "PUT", "/api/users/me", profileRequest{Username: &empty}))
	wantError(t, w, http.StatusBadRequest, "用户名不能为空")
}

func TestUpdateProfileLoggedOut(t *testing.T) {
	env := newTestEnv(t)

	name := "ghost"
	w := httptest.NewRecorder()
	env.api.UpdateProfile(w, jsonRequest(t, "PUT", "/api/users/me", profileRequest{Username: &name}))
	wantError(t, w, http.StatusUnauthorized, "未登录")
}
