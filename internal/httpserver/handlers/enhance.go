package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/forn8njoell-cmd/promptstudio/internal/httpserver/deps"
)

type enhanceRequest struct {
	BasicPrompt string `json:"basic_prompt"`
}

// EnhancePrompt forwards the basic prompt to the LLM provider. The basic
// prompt is not validated locally; an empty string is forwarded too.
func EnhancePrompt(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req enhanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w)
			return
		}

		enhanced, err := d.Enhancer.Enhance(r.Context(), req.BasicPrompt)
		if err != nil {
			writeError(d, w, "error enhancing prompt", err)
			return
		}

		writeJSON(w, http.StatusOK, promptResponse{Prompt: enhanced})
	}
}
