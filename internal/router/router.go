// Package router sets up all HTTP routes and middleware chains for the
// MarkPad server. The editor page and the document API share one global
// middleware stack; the API additionally sits behind a rate limiter.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"markpad/internal/handlers"
	"markpad/internal/middleware"
	"markpad/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(ed *handlers.Editor, apiLimiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check, outside the rate limit.
	r.Get("/health", healthHandler)

	// The editor page. Serves the loading page until the asset gate opens.
	r.Get("/", ed.Home)

	// Document API, everything the page itself talks to.
	r.Route("/api", func(r chi.Router) {
		r.Use(apiLimiter.Middleware)

		r.Get("/status", ed.Status)

		r.Route("/document", func(r chi.Router) {
			r.Get("/", ed.Document)
			r.Post("/", ed.Update)
			r.Get("/file", ed.Download)
			r.Post("/file", ed.Upload)
		})

		r.Get("/preview", ed.Preview)
		r.Get("/notification", ed.Notification)
	})

	// Embedded static assets. The URL prefix matches the embedded
	// directory name, so no prefix stripping is needed.
	r.Handle("/static/*", http.FileServer(http.FS(web.StaticFS)))

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
