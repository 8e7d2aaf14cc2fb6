package ads

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// adData mirrors the serialized JSON blob the admin UI posts as a single
// form field. A second client variant posts the same information as discrete
// form fields instead; NormalizeForm accepts both.
type adData struct {
	CampaignName   string          `json:"campaignName"`
	ProductID      string          `json:"productId"`
	ImageID        string          `json:"imageId"`
	AdType         string          `json:"adType"`
	Prompt         string          `json:"prompt"`
	Config         json.RawMessage `json:"config"`
	SourceImageURL string          `json:"sourceImageUrl"`
}

// NormalizeForm merges the two accepted input shapes into one canonical
// GenerationRequest.
//
// Source image resolution order: the discrete imageUrl field, then the
// sourceImageUrl field inside the adData blob, then a fixed placeholder.
// A missing image is deliberately not a hard failure so the pipeline stays
// resilient to partial upstream data.
//
// An adType outside the supported set and malformed config JSON are hard
// validation failures raised before anything touches the network.
func NormalizeForm(form url.Values) (*GenerationRequest, error) {
	req := &GenerationRequest{
		CampaignName: strings.TrimSpace(form.Get("campaignName")),
		ProductID:    strings.TrimSpace(form.Get("productId")),
		Prompt:       form.Get("prompt"),
	}

	rawAdType := form.Get("adType")
	rawConfig := form.Get("config")
	imageURL := strings.TrimSpace(form.Get("imageUrl"))
	blobImageURL := ""

	if blob := form.Get("adData"); blob != "" {
		var data adData
		if err := json.Unmarshal([]byte(blob), &data); err != nil {
			return nil, fmt.Errorf("parse adData: %w", err)
		}
		req.CampaignName = data.CampaignName
		req.ProductID = data.ProductID
		req.ImageID = data.ImageID
		req.Prompt = data.Prompt
		rawAdType = data.AdType
		blobImageURL = strings.TrimSpace(data.SourceImageURL)
		if len(data.Config) > 0 {
			rawConfig = string(data.Config)
		}
	}

	adType, err := ParseAdType(rawAdType)
	if err != nil {
		return nil, err
	}
	req.AdType = adType

	if rawConfig != "" {
		cfg, err := parseConfig(rawConfig)
		if err != nil {
			return nil, err
		}
		req.Config = cfg
	}

	switch {
	case imageURL != "":
		req.SourceImageURL = imageURL
	case blobImageURL != "":
		req.SourceImageURL = blobImageURL
	default:
		req.SourceImageURL = PlaceholderImageURL
	}

	return req, nil
}

// parseConfig accepts the config either as a JSON object or as a JSON string
// wrapping one, which is how the form serializer double-encodes it.
func parseConfig(raw string) (Preferences, error) {
	var cfg Preferences
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
		trimmed = inner
	}
	if trimmed == "" {
		return cfg, nil
	}
	if err := json.Unmarshal([]byte(trimmed), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
