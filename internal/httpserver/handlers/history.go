package handlers

import (
	"net/http"

	"github.com/forn8njoell-cmd/promptstudio/internal/httpserver/deps"
)

// History lists the most recent records, newest first, capped by the store.
func History(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prompts, err := d.Store.List(r.Context(), false)
		if err != nil {
			writeError(d, w, "error fetching history", err)
			return
		}
		writeJSON(w, http.StatusOK, prompts)
	}
}

// Favorites lists favorited records only, newest first, capped by the store.
func Favorites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prompts, err := d.Store.List(r.Context(), true)
		if err != nil {
			writeError(d, w, "error fetching favorites", err)
			return
		}
		writeJSON(w, http.StatusOK, prompts)
	}
}
