package prompt

import (
	"fmt"
	"strings"

	"adserver/internal/domain/ads"
)

// DefaultProductDescription fills in for products whose description is empty.
const DefaultProductDescription = "Premium quality product with excellent features."

var audienceMap = map[string]string{
	"young_adults":  "young, trendy audience aged 18-25",
	"professionals": "working professionals aged 25-40",
	"parents":       "busy parents with children",
	"seniors":       "mature customers aged 45+",
	"general":       "broad consumer audience",
}

var toneMap = map[string]string{
	"professional": "professional and trustworthy",
	"casual":       "casual and friendly",
	"exciting":     "exciting and energetic",
	"luxury":       "luxurious and premium",
	"playful":      "fun and playful",
}

var purposeMap = map[string]string{
	"awareness":  "increase brand awareness and visibility",
	"conversion": "drive sales and conversions",
	"engagement": "boost social media engagement",
	"launch":     "announce and promote a new product",
}

const adPromptTemplate = `Create a compelling advertising visual for %q.
Product details: %s

Target audience: %s
Tone: %s
Purpose: %s

Visual requirements:
- Eye-catching and professional composition
- Clear product focus with lifestyle context
- High-quality, commercial-grade appearance
- Optimized for social media and digital advertising
- Include subtle branding elements
- Use modern, clean design principles
- Ensure the product stands out prominently
- Create emotional connection with the target audience
- Professional lighting and color grading
- Clean, uncluttered background that complements the product

Style: Modern commercial advertising photography with %s aesthetics, perfect for %s.`

// BuildAdPrompt maps structured ad-configuration fields to the generation
// prompt. Unmapped audience, tone, or purpose values degrade to generic
// descriptors instead of failing. Pure and deterministic: no I/O, no error
// path, identical inputs yield identical strings.
func BuildAdPrompt(req ads.PromptRequest) string {
	audience, ok := audienceMap[req.Preferences.TargetAudience]
	if !ok {
		audience = "target audience"
	}
	tone, ok := toneMap[req.Preferences.Tone]
	if !ok {
		tone = "engaging"
	}
	purpose, ok := purposeMap[req.Preferences.Purpose]
	if !ok {
		purpose = "promote the product"
	}

	description := req.ProductDescription
	if strings.TrimSpace(description) == "" {
		description = DefaultProductDescription
	}

	return fmt.Sprintf(adPromptTemplate, req.ProductTitle, description, audience, tone, purpose, tone, purpose)
}

// TypographyHint returns a one-line instruction to render any on-image text
// in the given locale. It is empty for the default locale so prompts stay
// byte-stable for callers that never opt into localization.
func TypographyHint(locale, defaultLocale string) string {
	locale = strings.TrimSpace(strings.ToLower(locale))
	if locale == "" || locale == strings.ToLower(defaultLocale) {
		return ""
	}
	return fmt.Sprintf("Use %s language for any on-image typography or signage.", strings.ToUpper(locale))
}
