package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"adserver/internal/domain/ads"
)

func TestBuildAdPromptMappedVocabulary(t *testing.T) {
	testCases := []struct {
		name     string
		prefs    ads.Preferences
		expected []string
	}{{
		name:  "young adults exciting conversion",
		prefs: ads.Preferences{TargetAudience: "young_adults", Tone: "exciting", Purpose: "conversion"},
		expected: []string{
			"young, trendy audience aged 18-25",
			"exciting and energetic",
			"drive sales and conversions",
		},
	}, {
		name:  "professionals luxury launch",
		prefs: ads.Preferences{TargetAudience: "professionals", Tone: "luxury", Purpose: "launch"},
		expected: []string{
			"working professionals aged 25-40",
			"luxurious and premium",
			"announce and promote a new product",
		},
	}, {
		name:  "parents casual engagement",
		prefs: ads.Preferences{TargetAudience: "parents", Tone: "casual", Purpose: "engagement"},
		expected: []string{
			"busy parents with children",
			"casual and friendly",
			"boost social media engagement",
		},
	}, {
		name:  "unmapped values degrade",
		prefs: ads.Preferences{TargetAudience: "astronauts", Tone: "brooding", Purpose: "world_domination"},
		expected: []string{
			"Target audience: target audience",
			"Tone: engaging",
			"Purpose: promote the product",
		},
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildAdPrompt(ads.PromptRequest{
				ProductTitle:       "Desk Lamp",
				ProductDescription: "A lamp.",
				Preferences:        tc.prefs,
			})
			for _, want := range tc.expected {
				if !strings.Contains(got, want) {
					t.Fatalf("prompt missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestBuildAdPromptEndToEndScenario(t *testing.T) {
	req := ads.PromptRequest{
		ProductTitle: "Wireless Earbuds",
		Preferences:  ads.Preferences{TargetAudience: "young_adults", Tone: "exciting", Purpose: "conversion"},
	}
	got := BuildAdPrompt(req)
	for _, want := range []string{
		"Wireless Earbuds",
		"young, trendy audience aged 18-25",
		"exciting and energetic",
		"drive sales and conversions",
		DefaultProductDescription,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestBuildAdPromptIdempotent(t *testing.T) {
	req := ads.PromptRequest{
		ProductTitle:       "Ceramic Mug",
		ProductDescription: "Hand glazed.",
		Preferences:        ads.Preferences{TargetAudience: "general", Tone: "playful", Purpose: "awareness"},
	}
	if BuildAdPrompt(req) != BuildAdPrompt(req) {
		t.Fatal("prompt builder is not deterministic")
	}
}

func TestTypographyHint(t *testing.T) {
	if hint := TypographyHint("en", "en"); hint != "" {
		t.Fatalf("default locale should yield no hint, got %q", hint)
	}
	if hint := TypographyHint("id", "en"); !strings.Contains(hint, "ID language") {
		t.Fatalf("hint = %q", hint)
	}
}

type stubTextGenerator struct {
	prompt string
	out    string
	err    error
}

func (s *stubTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.out, s.err
}

func TestRefinerBuildsMetaPrompt(t *testing.T) {
	stub := &stubTextGenerator{out: "A cinematic hero shot."}
	refiner := NewRefiner(stub)

	got, err := refiner.Refine(context.Background(), ads.PromptRequest{
		ProductTitle: "Trail Shoes",
		Preferences:  ads.Preferences{TargetAudience: "young_adults", Tone: "exciting", Purpose: "conversion"},
	}, ads.AdTypeImageToVideo)
	if err != nil {
		t.Fatalf("Refine returned error: %v", err)
	}
	if got != "A cinematic hero shot." {
		t.Fatalf("refined = %q", got)
	}
	for _, want := range []string{"Product: Trail Shoes", "Ad Type: IMAGE_TO_VIDEO", "advertising video", DefaultProductDescription} {
		if !strings.Contains(stub.prompt, want) {
			t.Fatalf("meta prompt missing %q:\n%s", want, stub.prompt)
		}
	}
}

func TestRefinerUpstreamFailure(t *testing.T) {
	refiner := NewRefiner(&stubTextGenerator{err: errors.New("quota exceeded")})
	if _, err := refiner.Refine(context.Background(), ads.PromptRequest{ProductTitle: "X"}, ads.AdTypeImageToImage); err == nil {
		t.Fatal("expected error")
	}
}
