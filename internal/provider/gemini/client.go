package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/forn8njoell-cmd/promptstudio/internal/domain"
)

const imageModel = "gemini-2.5-flash-image-preview"

// Client wraps the Gemini API for multimodal image generation.
type Client struct {
	api *genai.Client
}

// NewClient builds the image generator. An empty API key is tolerated here;
// calls then fail with domain.ErrAPIKeyMissing instead of blocking startup.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return &Client{}, nil
	}

	api, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Client{api: api}, nil
}

// Generate forwards the prompt verbatim and returns the first inline image
// from the response. A response without any image is domain.ErrNoImage,
// distinct from transport failures.
func (c *Client) Generate(ctx context.Context, prompt string) (*domain.GeneratedImage, error) {
	if c.api == nil {
		return nil, domain.ErrAPIKeyMissing
	}

	resp, err := c.api.Models.GenerateContent(ctx, imageModel, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"IMAGE", "TEXT"},
		})
	if err != nil {
		return nil, fmt.Errorf("generating image: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &domain.GeneratedImage{
					Data:     part.InlineData.Data,
					MimeType: part.InlineData.MIMEType,
				}, nil
			}
		}
	}

	return nil, domain.ErrNoImage
}

var _ domain.ImageGenerator = (*Client)(nil)
