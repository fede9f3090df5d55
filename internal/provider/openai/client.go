package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/forn8njoell-cmd/promptstudio/internal/domain"
)

const enhanceModel = "gpt-4o-mini"

const systemMessage = "You are an expert in creating photorealistic image generation prompts " +
	"for commercial advertising. Transform basic ideas into detailed, professional prompts " +
	"that will produce images indistinguishable from real photographs."

const enhanceTemplate = `Transform this basic prompt into a highly detailed, photorealistic commercial photography prompt:

"%s"

Include:
- Specific subject details and product placement
- Professional lighting setup (type, direction, quality)
- Camera specifications (angle, lens, aperture, focal length)
- Composition and framing details
- Color palette and mood
- Texture and material details
- Environmental context and setting
- Professional quality markers (8K, sharp focus, etc.)
- Natural, non-AI aesthetic descriptors

Make it sound like a professional photographer's shot list. Return ONLY the enhanced prompt, no explanations.`

// Client wraps the OpenAI chat API for prompt enhancement.
type Client struct {
	api *openai.Client
}

// NewClient builds the enhancer. An empty API key is tolerated here; calls
// then fail with domain.ErrAPIKeyMissing instead of blocking startup.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		return &Client{}
	}
	return &Client{api: openai.NewClient(apiKey)}
}

// Enhance forwards the basic prompt inside a fixed instruction template and
// returns the trimmed completion. An empty basic prompt is forwarded as-is.
func (c *Client) Enhance(ctx context.Context, basicPrompt string) (string, error) {
	if c.api == nil {
		return "", domain.ErrAPIKeyMissing
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: enhanceModel,
		User:  "enhance_" + uuid.NewString(),
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemMessage,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(enhanceTemplate, basicPrompt),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("enhancing prompt: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

var _ domain.PromptEnhancer = (*Client)(nil)
