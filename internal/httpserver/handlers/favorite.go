package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forn8njoell-cmd/promptstudio/internal/httpserver/deps"
	"github.com/forn8njoell-cmd/promptstudio/internal/logger"
)

type favoriteResponse struct {
	Success    bool `json:"success"`
	IsFavorite bool `json:"is_favorite"`
}

// ToggleFavorite flips the favorite flag of one record. Read-then-write:
// two concurrent toggles on the same id can land on either final state.
func ToggleFavorite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		record, err := d.Store.FindByID(r.Context(), id)
		if err != nil {
			writeError(d, w, "error toggling favorite", err)
			return
		}

		newState := !record.IsFavorite
		if err := d.Store.SetFavorite(r.Context(), id, newState); err != nil {
			writeError(d, w, "error toggling favorite", err)
			return
		}

		d.Logger.Info("favorite toggled",
			logger.String("id", id),
			logger.Bool("is_favorite", newState))

		writeJSON(w, http.StatusOK, favoriteResponse{Success: true, IsFavorite: newState})
	}
}
