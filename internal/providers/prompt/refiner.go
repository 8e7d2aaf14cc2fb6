package prompt

import (
	"context"
	"fmt"
	"strings"

	"adserver/internal/domain/ads"
)

// TextGenerator is the upstream capability the refiner needs: one text-model
// round trip. Implemented by the genai client; stubbed in tests.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Refiner rewrites the locally templated prompt through a text model so the
// generation prompt carries richer composition and lighting direction.
type Refiner struct {
	generator TextGenerator
}

func NewRefiner(generator TextGenerator) *Refiner {
	return &Refiner{generator: generator}
}

// Refine asks the text model for a detailed generation prompt. Callers fall
// back to the local template when the upstream call fails.
func (r *Refiner) Refine(ctx context.Context, req ads.PromptRequest, adType ads.AdType) (string, error) {
	if r == nil || r.generator == nil {
		return "", fmt.Errorf("prompt refiner not configured")
	}
	refined, err := r.generator.GenerateText(ctx, buildMetaPrompt(req, adType))
	if err != nil {
		return "", fmt.Errorf("refine prompt: %w", err)
	}
	refined = strings.TrimSpace(refined)
	if refined == "" {
		return "", fmt.Errorf("refine prompt: empty model response")
	}
	return refined, nil
}

func buildMetaPrompt(req ads.PromptRequest, adType ads.AdType) string {
	medium := "image"
	if adType == ads.AdTypeImageToVideo {
		medium = "video"
	}
	description := req.ProductDescription
	if strings.TrimSpace(description) == "" {
		description = DefaultProductDescription
	}
	return fmt.Sprintf(`Generate a detailed prompt for creating an advertising image/video for the following product:

Product: %s
Description: %s
Target Audience: %s
Tone: %s
Purpose: %s
Ad Type: %s

Create a comprehensive prompt that will generate a high-quality, professional advertising %s that effectively showcases the product and appeals to the target audience. Include specific details about composition, lighting, style, and mood.`,
		req.ProductTitle,
		description,
		req.Preferences.TargetAudience,
		req.Preferences.Tone,
		req.Preferences.Purpose,
		adType,
		medium,
	)
}
