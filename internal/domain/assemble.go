package domain

import "strings"

// FormInput is the structured input for form-based prompt assembly.
// Subject is required; everything else is optional.
type FormInput struct {
	Subject           string `json:"subject"`
	Setting           string `json:"setting"`
	Lighting          string `json:"lighting"`
	CameraAngle       string `json:"camera_angle"`
	Style             string `json:"style"`
	Mood              string `json:"mood"`
	AdditionalDetails string `json:"additional_details"`
}

var lightingClauses = map[string]string{
	"natural":     "natural daylight, soft shadows",
	"studio":      "professional studio lighting, three-point lighting setup",
	"golden_hour": "golden hour lighting, warm tones, soft glow",
	"dramatic":    "dramatic lighting with strong contrast, chiaroscuro effect",
	"soft":        "soft diffused lighting, even illumination",
	"backlit":     "backlit with rim lighting, glowing edges",
}

var cameraClauses = map[string]string{
	"eye_level": "shot at eye-level, straight-on perspective",
	"top_down":  "top-down flat lay perspective, bird's eye view",
	"close_up":  "extreme close-up macro shot, detailed textures",
	"wide":      "wide-angle shot, environmental context",
	"45_degree": "shot at 45-degree angle, dynamic composition",
	"low_angle": "low-angle hero shot, powerful perspective",
}

var styleClauses = map[string]string{
	"minimalist": "clean minimalist aesthetic, simple composition",
	"luxury":     "luxury premium aesthetic, high-end feel",
	"vibrant":    "vibrant saturated colors, energetic mood",
	"muted":      "muted tones, sophisticated color palette",
	"modern":     "modern contemporary style, sleek design",
	"rustic":     "rustic organic aesthetic, natural materials",
}

// qualityClauses are always appended verbatim, in this order.
var qualityClauses = []string{
	"captured with professional DSLR camera, 50mm lens, f/2.8 aperture",
	"8K resolution, ultra-detailed, photorealistic, sharp focus",
	"professional color grading, commercial quality",
	"no artificial elements, natural product placement",
}

// resolveClause maps a descriptor to its canned clause. A recognized key
// (case-insensitive) yields the table clause, an unknown value passes
// through unchanged, and an empty value yields the fallback.
func resolveClause(value string, table map[string]string, fallback string) string {
	if value == "" {
		return fallback
	}
	if clause, ok := table[strings.ToLower(value)]; ok {
		return clause
	}
	return value
}

// AssemblePrompt builds the final photorealistic prompt from form input.
// Pure and deterministic: identical input yields an identical string.
func AssemblePrompt(in FormInput) string {
	parts := make([]string, 0, 10)

	parts = append(parts, "Professional commercial photography of "+in.Subject)

	if in.Setting != "" {
		parts = append(parts, "in "+in.Setting)
	}

	parts = append(parts, resolveClause(in.Lighting, lightingClauses, "professional lighting"))
	parts = append(parts, resolveClause(in.CameraAngle, cameraClauses, "professional camera angle"))

	var styleParts []string
	if in.Style != "" {
		styleParts = append(styleParts, resolveClause(in.Style, styleClauses, ""))
	}
	if in.Mood != "" {
		styleParts = append(styleParts, in.Mood+" atmosphere")
	}
	if len(styleParts) > 0 {
		parts = append(parts, strings.Join(styleParts, ", "))
	}

	parts = append(parts, qualityClauses...)

	if in.AdditionalDetails != "" {
		parts = append(parts, in.AdditionalDetails)
	}

	return strings.Join(parts, ", ")
}
