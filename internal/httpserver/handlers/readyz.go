package handlers

import (
	"net/http"

	"github.com/forn8njoell-cmd/promptstudio/internal/httpserver/deps"
	"github.com/forn8njoell-cmd/promptstudio/internal/logger"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
}

// Readyz reports readiness based on a store ping.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.StorePing != nil {
			if err := d.StorePing(r.Context()); err != nil {
				d.Logger.Warn("readiness check failed", logger.Error(err))
				writeJSON(w, http.StatusServiceUnavailable, readyzResponse{Ready: false})
				return
			}
		}
		writeJSON(w, http.StatusOK, readyzResponse{Ready: true})
	}
}
