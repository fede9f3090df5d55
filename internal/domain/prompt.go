package domain

import "time"

// Prompt is one persisted prompt record. Every field except IsFavorite is
// immutable after creation; records are never deleted.
type Prompt struct {
	ID         string         `bson:"id" json:"id"`
	PromptText string         `bson:"prompt_text" json:"prompt_text"`
	PromptType string         `bson:"prompt_type" json:"prompt_type"`
	Parameters map[string]any `bson:"parameters,omitempty" json:"parameters,omitempty"`
	ImageData  string         `bson:"image_data,omitempty" json:"image_data,omitempty"`
	CreatedAt  time.Time      `bson:"created_at" json:"created_at"`
	IsFavorite bool           `bson:"is_favorite" json:"is_favorite"`
}

// GeneratedImage is the raw output of the image provider.
type GeneratedImage struct {
	Data     []byte
	MimeType string
}
