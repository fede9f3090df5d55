package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/forn8njoell-cmd/promptstudio/internal/domain"
	"github.com/forn8njoell-cmd/promptstudio/internal/httpserver/deps"
	"github.com/forn8njoell-cmd/promptstudio/internal/logger"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeBadRequest(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
}

// writeError translates domain errors into HTTP responses once, at the
// boundary. Not-found is the only error with a distinct status; everything
// else is a server error carrying the underlying message as detail.
func writeError(d deps.Deps, w http.ResponseWriter, msg string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Prompt not found"})
		return
	}

	d.Logger.Error(msg, logger.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: err.Error()})
}
