package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/forn8njoell-cmd/promptstudio/internal/httpserver/deps"
	"github.com/forn8njoell-cmd/promptstudio/internal/httpserver/handlers"
)

func init() { Register(registerPrompts) }

func registerPrompts(r chi.Router, d deps.Deps) {
	r.Route("/api/prompts", func(r chi.Router) {
		r.Post("/generate-form", handlers.GenerateFormPrompt(d))
		r.Post("/enhance", handlers.EnhancePrompt(d))
		r.Post("/generate-image", handlers.GenerateImage(d))
		r.Post("/save", handlers.SavePrompt(d))
		r.Get("/history", handlers.History(d))
		r.Get("/favorites", handlers.Favorites(d))
		r.Post("/{id}/favorite", handlers.ToggleFavorite(d))
	})
}
