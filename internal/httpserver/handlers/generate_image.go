package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/forn8njoell-cmd/promptstudio/internal/httpserver/deps"
)

type imageRequest struct {
	Prompt string `json:"prompt"`
}

type imageResponse struct {
	ImageData string `json:"image_data"`
	MimeType  string `json:"mime_type"`
}

// GenerateImage asks the multimodal provider for one image. The result is
// returned to the caller only; nothing is persisted here.
func GenerateImage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req imageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w)
			return
		}

		img, err := d.Images.Generate(r.Context(), req.Prompt)
		if err != nil {
			writeError(d, w, "error generating image", err)
			return
		}

		writeJSON(w, http.StatusOK, imageResponse{
			ImageData: base64.StdEncoding.EncodeToString(img.Data),
			MimeType:  img.MimeType,
		})
	}
}
