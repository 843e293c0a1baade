/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Calendar generation
		r.Route("/calendar", func(r chi.Router) {
			r.Post("/", h.GenerateCalendar)
			r.Post("/summary", h.GenerateSummary)
		})

		// Saved configurations
		r.Route("/configs", func(r chi.Router) {
			r.Get("/", h.ListConfigs)
			r.Post("/", h.CreateConfig)
			r.Get("/{id}", h.GetConfig)
			r.Put("/{id}", h.UpdateConfig)
			r.Delete("/{id}", h.DeleteConfig)
			r.Post("/{id}/calendar", h.GenerateFromConfig)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Jornada Calendar Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Jornada Calendar Engine API</h1>
<h2>API Endpoints</h2>
<ul>
<li>POST /api/calendar - Generate an annual calendar</li>
<li>POST /api/calendar/summary - Generate aggregate statistics</li>
<li><a href="/api/configs">/api/configs</a> - Saved configurations</li>
</ul>
</body>
</html>`))
	})

	return r
}
