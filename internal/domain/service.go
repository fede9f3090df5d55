package domain

import "context"

// PromptStore is the persistence contract for prompt records.
type PromptStore interface {
	// Insert stores a new record. Each call creates a new record.
	Insert(ctx context.Context, p *Prompt) error
	// FindByID returns the record with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*Prompt, error)
	// List returns up to 100 records sorted by created_at descending,
	// optionally filtered to favorites only.
	List(ctx context.Context, onlyFavorites bool) ([]Prompt, error)
	// SetFavorite persists a new favorite state for the given id,
	// returning ErrNotFound when the id is unknown.
	SetFavorite(ctx context.Context, id string, favorite bool) error
}

// PromptEnhancer turns a basic prompt into a detailed one via an LLM.
// An empty basic prompt is legal and forwarded as-is.
type PromptEnhancer interface {
	Enhance(ctx context.Context, basicPrompt string) (string, error)
}

// ImageGenerator produces one image for a prompt, or ErrNoImage when the
// provider returns none.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (*GeneratedImage, error)
}
