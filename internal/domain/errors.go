package domain

import "errors"

var (
	// ErrNotFound is returned when a prompt id does not exist in the store.
	ErrNotFound = errors.New("prompt not found")

	// ErrNoImage is returned when the provider call succeeds but yields
	// zero images. Kept distinct from transport failures.
	ErrNoImage = errors.New("no image generated")

	// ErrAPIKeyMissing is returned when a provider credential is not configured.
	ErrAPIKeyMissing = errors.New("API key not configured")
)
