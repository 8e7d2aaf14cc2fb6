package ads

import (
	"fmt"
	"strings"
)

// AdType discriminates between the two supported generation behaviours.
type AdType string

const (
	AdTypeImageToImage AdType = "IMAGE_TO_IMAGE"
	AdTypeImageToVideo AdType = "IMAGE_TO_VIDEO"
)

// PlaceholderImageURL is used when a request carries no source image location
// at all. Generation then runs against a stock placeholder instead of failing.
const PlaceholderImageURL = "https://via.placeholder.com/800x600"

// DefaultVideoDuration is the advertised length, in seconds, of the simulated
// video output.
const DefaultVideoDuration = 5

// Preferences holds the structured ad configuration a merchant picks in the
// admin UI. Unknown enum values are tolerated everywhere; the prompt builder
// degrades them to generic descriptors.
type Preferences struct {
	TargetAudience string `json:"targetAudience"`
	Tone           string `json:"tone"`
	Purpose        string `json:"purpose"`
}

// PromptRequest is the input to the prompt builder. It lives for one HTTP
// call and is never stored.
type PromptRequest struct {
	ProductTitle       string
	ProductDescription string
	Preferences        Preferences
}

// GenerationRequest is the canonical request produced by normalization,
// regardless of which of the two accepted input shapes carried it.
type GenerationRequest struct {
	CampaignName   string
	ProductID      string
	ImageID        string
	SourceImageURL string
	Prompt         string
	AdType         AdType
	Config         Preferences
}

// GenerationResult is the uniform outcome of one generation round trip.
// Exactly one of (Success with at least one of ImageURL/VideoURL) or
// (!Success with Error) holds. TextResponse may accompany either outcome:
// a model that answered with prose but no image yields a soft failure that
// still carries the explanatory text.
type GenerationResult struct {
	Success      bool
	ImageData    string // base64 payload of the generated image
	ImageURL     string // data: URI on success
	VideoURL     string
	ThumbnailURL string
	Duration     int
	TextResponse string
	Filename     string
	Error        string
}

// UnsupportedAdTypeError reports an adType outside the two supported
// variants. It is a hard validation failure raised before any network call.
type UnsupportedAdTypeError struct {
	Value string
}

func (e *UnsupportedAdTypeError) Error() string {
	return fmt.Sprintf("unsupported ad type %q", e.Value)
}

// ParseAdType validates the wire value of an ad type.
func ParseAdType(raw string) (AdType, error) {
	switch AdType(strings.TrimSpace(raw)) {
	case AdTypeImageToImage:
		return AdTypeImageToImage, nil
	case AdTypeImageToVideo:
		return AdTypeImageToVideo, nil
	default:
		return "", &UnsupportedAdTypeError{Value: raw}
	}
}
