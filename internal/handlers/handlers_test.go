// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"deepflood/internal/ai"
	"deepflood/internal/level"
	"deepflood/internal/models"
	"deepflood/internal/store"
)

// testEnv bundles an API handler set with direct store access, so tests can
// arrange fixture state without going through HTTP.
type testEnv struct {
	api        *API
	posts      *store.PostsStore
	comments   *store.CommentsStore
	categories *store.CategoriesStore
	users      *store.UsersStore
	registry   *ai.Registry
}

// newTestEnv builds the handler set on in-memory stores: no Valkey, no
// session cookies, no auth delay. The AI registry starts with no providers
// so assistant calls hit the fallback unless a test registers a stub.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx := context.Background()
	posts := store.NewPostsStore(ctx, nil)
	comments := store.NewCommentsStore(ctx, nil)
	categories := store.NewCategoriesStore(store.DefaultCategories())
	users := store.NewUsersStore(ctx, nil)
	users.SetAuthDelay(0)

	registry := ai.NewRegistry("openai", nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	assistant := ai.NewAssistant(registry, logger)

	api := New(posts, comments, categories, users, nil, assistant, level.DemoLevels(1))
	return &testEnv{
		api:        api,
		posts:      posts,
		comments:   comments,
		categories: categories,
		users:      users,
		registry:   registry,
	}
}

// login signs in a fixture account and returns it.
func login(t *testing.T, env *testEnv) *models.User {
	t.Helper()

	u, err := env.users.Login(context.Background(), "walker@deepflood.local", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return u
}

// jsonRequest builds a request with the given value marshalled as its body.
func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	}
	return httptest.NewRequest(method, target, buf)
}

// withURLParam injects a chi route parameter, so handlers can be exercised
// directly without mounting the router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// decodeInto unmarshals the recorded response body.
func decodeInto(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()

	if err := json.NewDecoder(w.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// wantError asserts a JSON error response with the given status and message.
func wantError(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()

	if w.Code != status {
		t.Fatalf("status: got %d, want %d (body %s)", w.Code, status, w.Body.String())
	}
	var body map[string]string
	decodeInto(t, w, &body)
	if body["error"] != msg {
		t.Errorf("error message: got %q, want %q", body["error"], msg)
	}
}
