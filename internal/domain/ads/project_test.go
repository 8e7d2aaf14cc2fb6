package ads

import "testing"

func TestProjectSuccessImage(t *testing.T) {
	res := &GenerationResult{
		Success:      true,
		ImageURL:     "data:image/png;base64,AAAA",
		ThumbnailURL: "",
		TextResponse: "done",
		Filename:     "generated-ad-1700000000000.png",
	}
	out := Project(res, AdTypeImageToImage)
	if !out.Success {
		t.Fatal("expected success")
	}
	if out.Message != "Image generation completed successfully!" {
		t.Fatalf("Message = %q", out.Message)
	}
	if out.AssetURL != res.ImageURL {
		t.Fatalf("AssetURL = %q", out.AssetURL)
	}
	if out.Error != "" {
		t.Fatalf("Error should be empty, got %q", out.Error)
	}
}

func TestProjectSuccessVideoUsesVideoURL(t *testing.T) {
	res := &GenerationResult{
		Success:      true,
		VideoURL:     "data:image/png;base64,BBBB",
		ThumbnailURL: "data:image/png;base64,BBBB",
	}
	out := Project(res, AdTypeImageToVideo)
	if out.Message != "Video generation completed successfully!" {
		t.Fatalf("Message = %q", out.Message)
	}
	if out.AssetURL != res.VideoURL || out.ThumbnailURL != res.ThumbnailURL {
		t.Fatalf("asset fields mismatch: %#v", out)
	}
}

func TestProjectFailure(t *testing.T) {
	out := Project(&GenerationResult{Success: false, Error: "No image data in response", TextResponse: "only text"}, AdTypeImageToImage)
	if out.Success {
		t.Fatal("expected failure")
	}
	if out.Error != "No image data in response" {
		t.Fatalf("Error = %q", out.Error)
	}
	if out.TextResponse != "only text" {
		t.Fatalf("TextResponse = %q", out.TextResponse)
	}
}

func TestProjectNilResult(t *testing.T) {
	out := Project(nil, AdTypeImageToImage)
	if out.Success || out.Error != "Generation failed" {
		t.Fatalf("unexpected projection: %#v", out)
	}
}
