package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/forn8njoell-cmd/promptstudio/internal/domain"
	"github.com/forn8njoell-cmd/promptstudio/internal/httpserver/deps"
	"github.com/forn8njoell-cmd/promptstudio/internal/logger"
)

type fakeStore struct {
	prompts   []domain.Prompt
	insertErr error
}

func (f *fakeStore) Insert(_ context.Context, p *domain.Prompt) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.prompts = append(f.prompts, *p)
	return nil
}

func (f *fakeStore) FindByID(_ context.Context, id string) (*domain.Prompt, error) {
	for i := range f.prompts {
		if f.prompts[i].ID == id {
			p := f.prompts[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeStore) List(_ context.Context, onlyFavorites bool) ([]domain.Prompt, error) {
	out := make([]domain.Prompt, 0, len(f.prompts))
	for _, p := range f.prompts {
		if !onlyFavorites || p.IsFavorite {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > 100 {
		out = out[:100]
	}
	return out, nil
}

func (f *fakeStore) SetFavorite(_ context.Context, id string, favorite bool) error {
	for i := range f.prompts {
		if f.prompts[i].ID == id {
			f.prompts[i].IsFavorite = favorite
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeEnhancer struct {
	gotPrompt string
	called    bool
	out       string
	err       error
}

func (f *fakeEnhancer) Enhance(_ context.Context, basicPrompt string) (string, error) {
	f.called = true
	f.gotPrompt = basicPrompt
	return f.out, f.err
}

type fakeImages struct {
	img *domain.GeneratedImage
	err error
}

func (f *fakeImages) Generate(_ context.Context, _ string) (*domain.GeneratedImage, error) {
	return f.img, f.err
}

func testDeps(store *fakeStore, enh *fakeEnhancer, img *fakeImages) deps.Deps {
	return deps.Deps{
		Logger:   logger.New("error", false),
		Store:    store,
		Enhancer: enh,
		Images:   img,
	}
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGenerateFormPrompt(t *testing.T) {
	d := testDeps(&fakeStore{}, &fakeEnhancer{}, &fakeImages{})
	h := GenerateFormPrompt(d)

	rec := doJSON(t, h, http.MethodPost, "/api/prompts/generate-form", map[string]string{
		"subject":      "luxury watch",
		"lighting":     "studio",
		"camera_angle": "45_degree",
		"style":        "luxury",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Prompt string `json:"prompt"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	for _, clause := range []string{
		"professional studio lighting, three-point lighting setup",
		"shot at 45-degree angle, dynamic composition",
		"luxury premium aesthetic, high-end feel",
	} {
		if !strings.Contains(resp.Prompt, clause) {
			t.Errorf("prompt %q missing clause %q", resp.Prompt, clause)
		}
	}
}

func TestGenerateFormPromptBadJSON(t *testing.T) {
	d := testDeps(&fakeStore{}, &fakeEnhancer{}, &fakeImages{})
	h := GenerateFormPrompt(d)

	req := httptest.NewRequest(http.MethodPost, "/api/prompts/generate-form", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestEnhancePromptForwardsEmptyInput(t *testing.T) {
	enh := &fakeEnhancer{out: "an enhanced prompt"}
	d := testDeps(&fakeStore{}, enh, &fakeImages{})
	h := EnhancePrompt(d)

	rec := doJSON(t, h, http.MethodPost, "/api/prompts/enhance", map[string]string{
		"basic_prompt": "",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: empty basic_prompt must not be rejected locally", rec.Code, http.StatusOK)
	}
	if !enh.called {
		t.Fatal("enhancer was not called")
	}
	if enh.gotPrompt != "" {
		t.Errorf("enhancer received %q, want empty string forwarded as-is", enh.gotPrompt)
	}
}

func TestEnhancePromptMissingCredential(t *testing.T) {
	enh := &fakeEnhancer{err: domain.ErrAPIKeyMissing}
	d := testDeps(&fakeStore{}, enh, &fakeImages{})
	h := EnhancePrompt(d)

	rec := doJSON(t, h, http.MethodPost, "/api/prompts/enhance", map[string]string{
		"basic_prompt": "a watch",
	})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rec.Body.String(), "API key not configured") {
		t.Errorf("body = %q, want credential detail", rec.Body.String())
	}
}

func TestGenerateImage(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	img := &fakeImages{img: &domain.GeneratedImage{Data: raw, MimeType: "image/png"}}
	d := testDeps(&fakeStore{}, &fakeEnhancer{}, img)
	h := GenerateImage(d)

	rec := doJSON(t, h, http.MethodPost, "/api/prompts/generate-image", map[string]string{
		"prompt": "a red sneaker on concrete",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		ImageData string `json:"image_data"`
		MimeType  string `json:"mime_type"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.MimeType != "image/png" {
		t.Errorf("mime_type = %q, want image/png", resp.MimeType)
	}
	if resp.ImageData != base64.StdEncoding.EncodeToString(raw) {
		t.Errorf("image_data = %q, want base64 of raw payload", resp.ImageData)
	}
}

func TestGenerateImageNoImage(t *testing.T) {
	store := &fakeStore{}
	d := testDeps(store, &fakeEnhancer{}, &fakeImages{err: domain.ErrNoImage})
	h := GenerateImage(d)

	rec := doJSON(t, h, http.MethodPost, "/api/prompts/generate-image", map[string]string{
		"prompt": "anything",
	})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rec.Body.String(), "no image generated") {
		t.Errorf("body = %q, want distinguishable no-image detail", rec.Body.String())
	}
	if len(store.prompts) != 0 {
		t.Errorf("store has %d records, image generation must not persist anything", len(store.prompts))
	}
}

func TestSavePrompt(t *testing.T) {
	store := &fakeStore{}
	d := testDeps(store, &fakeEnhancer{}, &fakeImages{})
	d.NewID = func() string { return "fixed-id" }
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	d.TimeNow = func() time.Time { return now }

	h := SavePrompt(d)
	rec := doJSON(t, h, http.MethodPost, "/api/prompts/save", map[string]any{
		"prompt_text": "a prompt",
		"prompt_type": "form",
		"parameters":  map[string]any{"subject": "watch"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got domain.Prompt
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got.ID != "fixed-id" {
		t.Errorf("id = %q, want %q", got.ID, "fixed-id")
	}
	if got.IsFavorite {
		t.Error("is_favorite = true, want false on creation")
	}
	if !got.CreatedAt.Equal(now) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, now)
	}
	if len(store.prompts) != 1 {
		t.Fatalf("store has %d records, want 1", len(store.prompts))
	}
}

func TestToggleFavorite(t *testing.T) {
	store := &fakeStore{prompts: []domain.Prompt{
		{ID: "p1", PromptText: "text", PromptType: "manual"},
	}}
	d := testDeps(store, &fakeEnhancer{}, &fakeImages{})

	r := chi.NewRouter()
	r.Post("/api/prompts/{id}/favorite", ToggleFavorite(d))

	first := doJSON(t, r, http.MethodPost, "/api/prompts/p1/favorite", nil)
	if first.Code != http.StatusOK {
		t.Fatalf("first toggle status = %d, want %d", first.Code, http.StatusOK)
	}

	var resp struct {
		Success    bool `json:"success"`
		IsFavorite bool `json:"is_favorite"`
	}
	if err := json.Unmarshal(first.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success || !resp.IsFavorite {
		t.Errorf("first toggle = %+v, want success with is_favorite=true", resp)
	}

	second := doJSON(t, r, http.MethodPost, "/api/prompts/p1/favorite", nil)
	if err := json.Unmarshal(second.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.IsFavorite {
		t.Error("second toggle should restore is_favorite=false")
	}
	if store.prompts[0].IsFavorite {
		t.Error("record should be back to its original state after two toggles")
	}
}

func TestToggleFavoriteUnknownID(t *testing.T) {
	d := testDeps(&fakeStore{}, &fakeEnhancer{}, &fakeImages{})

	r := chi.NewRouter()
	r.Post("/api/prompts/{id}/favorite", ToggleFavorite(d))

	rec := doJSON(t, r, http.MethodPost, "/api/prompts/missing/favorite", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d (not a generic server error)", rec.Code, http.StatusNotFound)
	}
}
