package ads

// GenerateAdResponse is the externally-returned JSON contract for one
// generation request.
type GenerateAdResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	AssetURL     string `json:"assetUrl,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	TextResponse string `json:"textResponse,omitempty"`
	Filename     string `json:"filename,omitempty"`
	AdType       AdType `json:"adType,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Project maps the internal result shape to the wire contract. Failures keep
// any explanatory model text so callers can distinguish "the model answered
// but produced no image" from a plain transport error.
func Project(res *GenerationResult, adType AdType) GenerateAdResponse {
	if res == nil || !res.Success {
		out := GenerateAdResponse{Success: false, Error: "Generation failed"}
		if res != nil {
			if res.Error != "" {
				out.Error = res.Error
			}
			out.TextResponse = res.TextResponse
		}
		return out
	}

	message := "Image generation completed successfully!"
	if adType == AdTypeImageToVideo {
		message = "Video generation completed successfully!"
	}

	assetURL := res.ImageURL
	if assetURL == "" {
		assetURL = res.VideoURL
	}

	return GenerateAdResponse{
		Success:      true,
		Message:      message,
		AssetURL:     assetURL,
		ThumbnailURL: res.ThumbnailURL,
		TextResponse: res.TextResponse,
		Filename:     res.Filename,
		AdType:       adType,
	}
}
