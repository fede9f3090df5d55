package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/forn8njoell-cmd/promptstudio/internal/domain"
	"github.com/forn8njoell-cmd/promptstudio/internal/httpserver/deps"
	"github.com/forn8njoell-cmd/promptstudio/internal/logger"
)

type promptResponse struct {
	Prompt string `json:"prompt"`
}

// GenerateFormPrompt assembles a photorealistic prompt from structured form
// fields. Pure string work, no provider or store involved.
func GenerateFormPrompt(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.FormInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeBadRequest(w)
			return
		}

		prompt := domain.AssemblePrompt(in)

		d.Logger.Debug("assembled form prompt",
			logger.String("subject", in.Subject),
			logger.Int("length", len(prompt)))

		writeJSON(w, http.StatusOK, promptResponse{Prompt: prompt})
	}
}
