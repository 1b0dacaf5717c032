// Package router sets up all HTTP routes and middleware chains for the
// DeepFlood forum API. Routes are grouped into public reads and
// authenticated mutations.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"deepflood/internal/handlers"
	"deepflood/internal/middleware"
	"deepflood/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Credential endpoints get a tight per-IP limit; the login delay
	// alone does not slow down a scripted brute force.
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Assistant calls fan out to a paid provider.
	aiLimiter := middleware.NewRateLimiter(20, time.Minute)

	r.Route("/api", func(r chi.Router) {
		// Auth
		r.Route("/auth", func(r chi.Router) {
			r.With(authLimiter.Middleware).Post("/login", api.Login)
			r.With(authLimiter.Middleware).Post("/register", api.Register)
			r.Post("/logout", api.Logout)
			r.Get("/me", api.Me)
		})

		// Posts
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", api.ListPosts)
			r.Get("/search", api.SearchPosts)
			r.Get("/{id}", api.GetPost)
			r.Get("/{id}/comments", api.ListComments)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/", api.CreatePost)
				r.Put("/{id}", api.UpdatePost)
				r.Delete("/{id}", api.DeletePost)
				r.Post("/{id}/comments", api.CreateComment)
			})
		})

		// Drafts — private to the session user.
		r.Route("/drafts", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/", api.ListDrafts)
			r.Post("/", api.SaveDraft)
			r.Delete("/{id}", api.DeleteDraft)
		})

		// Comments
		r.Route("/comments", func(r chi.Router) {
			r.Get("/{id}/replies", api.ListReplies)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Put("/{id}", api.UpdateComment)
				r.Delete("/{id}", api.DeleteComment)
				r.Post("/{id}/like", api.LikeComment)
				r.Delete("/{id}/like", api.UnlikeComment)
			})
		})

		// Categories
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", api.ListCategories)
			r.Get("/{slug}", api.GetCategory)
			r.Get("/{slug}/stats", api.GetCategoryStats)
			r.Get("/{slug}/posts", api.PostsByTopic)
		})

		// Users and levels
		r.Route("/users", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/me/level", api.MyLevel)
				r.Put("/me", api.UpdateProfile)
			})

			r.Get("/{id}/level", api.UserLevel)
		})

		// AI assistant
		r.Route("/ai", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(aiLimiter.Middleware)

			r.Post("/assist-post", api.AssistPost)
			r.Post("/assist-reply", api.AssistReply)
			r.Post("/suggest-title", api.AssistTitle)
			r.Post("/moderate", api.ModerateContent)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
