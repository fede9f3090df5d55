package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/forn8njoell-cmd/promptstudio/internal/domain"
	"github.com/forn8njoell-cmd/promptstudio/internal/httpserver/deps"
	"github.com/forn8njoell-cmd/promptstudio/internal/logger"
)

type saveRequest struct {
	PromptText string         `json:"prompt_text"`
	PromptType string         `json:"prompt_type"`
	Parameters map[string]any `json:"parameters,omitempty"`
	ImageData  string         `json:"image_data,omitempty"`
}

// SavePrompt creates a new record on every call, even for identical input.
func SavePrompt(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w)
			return
		}

		newID := d.NewID
		if newID == nil {
			newID = uuid.NewString
		}
		timeNow := d.TimeNow
		if timeNow == nil {
			timeNow = time.Now
		}

		record := domain.Prompt{
			ID:         newID(),
			PromptText: req.PromptText,
			PromptType: req.PromptType,
			Parameters: req.Parameters,
			ImageData:  req.ImageData,
			CreatedAt:  timeNow().UTC(),
			IsFavorite: false,
		}

		if err := d.Store.Insert(r.Context(), &record); err != nil {
			writeError(d, w, "error saving prompt", err)
			return
		}

		d.Logger.Info("prompt saved",
			logger.String("id", record.ID),
			logger.String("type", record.PromptType))

		writeJSON(w, http.StatusOK, record)
	}
}
