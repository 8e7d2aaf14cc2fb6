package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"adserver/internal/providers/prompt"
)

type stubTextModel struct {
	reply string
	err   error
}

func (s *stubTextModel) GenerateText(ctx context.Context, p string) (string, error) {
	return s.reply, s.err
}

func decodePromptResponse(t *testing.T, rec *httptest.ResponseRecorder) promptResponse {
	t.Helper()
	var resp promptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return resp
}

func TestGeneratePrompt(t *testing.T) {
	app := newTestApp(&stubGenerator{})

	form := url.Values{}
	form.Set("productTitle", "Wireless Earbuds")
	form.Set("productDesc", "Noise-cancelling earbuds with 24h battery")
	form.Set("targetAudience", "young_adults")
	form.Set("tone", "exciting")
	form.Set("purpose", "conversion")

	req := httptest.NewRequest(http.MethodPost, "/api/generate-prompt", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.GeneratePrompt(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodePromptResponse(t, rec)
	for _, want := range []string{
		`"Wireless Earbuds"`,
		"Noise-cancelling earbuds with 24h battery",
		"young, trendy audience aged 18-25",
		"exciting and energetic",
		"drive sales and conversions",
	} {
		if !strings.Contains(resp.Prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if resp.Refined {
		t.Fatal("local template must not report Refined")
	}
}

func TestGeneratePromptDefaultDescription(t *testing.T) {
	app := newTestApp(&stubGenerator{})

	form := url.Values{}
	form.Set("productTitle", "Mystery Box")

	req := httptest.NewRequest(http.MethodPost, "/api/generate-prompt", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.GeneratePrompt(rec, req)

	resp := decodePromptResponse(t, rec)
	if !strings.Contains(resp.Prompt, prompt.DefaultProductDescription) {
		t.Fatalf("expected default description, got %q", resp.Prompt)
	}
}

func TestEnhancePromptUsesModel(t *testing.T) {
	app := newTestApp(&stubGenerator{})
	app.Refiner = prompt.NewRefiner(&stubTextModel{reply: "a richer prompt"})

	form := url.Values{}
	form.Set("productTitle", "Wireless Earbuds")
	form.Set("adType", "IMAGE_TO_VIDEO")

	req := httptest.NewRequest(http.MethodPost, "/api/enhance-prompt", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.EnhancePrompt(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodePromptResponse(t, rec)
	if resp.Prompt != "a richer prompt" || !resp.Refined {
		t.Fatalf("unexpected response: %#v", resp)
	}
}

func TestEnhancePromptFallsBackToTemplate(t *testing.T) {
	app := newTestApp(&stubGenerator{})
	app.Refiner = prompt.NewRefiner(&stubTextModel{err: errors.New("quota exceeded")})

	form := url.Values{}
	form.Set("productTitle", "Wireless Earbuds")
	form.Set("tone", "luxury")

	req := httptest.NewRequest(http.MethodPost, "/api/enhance-prompt", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.EnhancePrompt(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodePromptResponse(t, rec)
	if resp.Refined {
		t.Fatal("fallback must not report Refined")
	}
	if !strings.Contains(resp.Prompt, "luxurious and premium") {
		t.Fatalf("expected local template fallback, got %q", resp.Prompt)
	}
}
