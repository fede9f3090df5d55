package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/forn8njoell-cmd/promptstudio/internal/httpserver/deps"
	"github.com/forn8njoell-cmd/promptstudio/internal/httpserver/handlers"
)

func init() { Register(registerInfra) }

func registerInfra(r chi.Router, d deps.Deps) {
	r.Get("/api/", handlers.Root(d))
	r.Get("/api/healthz", handlers.Healthz(d))
	r.Get("/api/readyz", handlers.Readyz(d))
}
