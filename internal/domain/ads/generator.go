package ads

import "context"

// Generator is the upstream generation capability the HTTP layer depends on.
// The production implementation wraps the Gemini generateContent endpoint;
// tests substitute a fake. Both operations absorb their own failures into the
// returned GenerationResult, so a non-nil error only signals that the call
// never ran (for example a cancelled context).
type Generator interface {
	GenerateImageFromImage(ctx context.Context, sourceImageURL, prompt string) (*GenerationResult, error)
	GenerateVideoFromImage(ctx context.Context, sourceImageURL, prompt string, durationSeconds int) (*GenerationResult, error)
}
