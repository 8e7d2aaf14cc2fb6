package handlers

import (
	"net/http"

	"adserver/internal/domain/ads"
	"adserver/internal/providers/prompt"
)

type promptResponse struct {
	Prompt  string `json:"prompt"`
	Refined bool   `json:"refined,omitempty"`
}

func promptRequestFromForm(r *http.Request) ads.PromptRequest {
	return ads.PromptRequest{
		ProductTitle:       r.FormValue("productTitle"),
		ProductDescription: r.FormValue("productDesc"),
		Preferences: ads.Preferences{
			TargetAudience: r.FormValue("targetAudience"),
			Tone:           r.FormValue("tone"),
			Purpose:        r.FormValue("purpose"),
		},
	}
}

// GeneratePrompt builds the ad prompt from the posted configuration using the
// local vocabulary tables. No upstream call is made.
func (a *App) GeneratePrompt(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.error(w, http.StatusInternalServerError, "Failed to generate prompt")
		return
	}
	a.json(w, http.StatusOK, promptResponse{Prompt: prompt.BuildAdPrompt(promptRequestFromForm(r))})
}

// EnhancePrompt builds the local prompt and then asks the text model for a
// richer rewrite. Upstream failure degrades to the local template so the
// endpoint never hard-fails on model trouble.
func (a *App) EnhancePrompt(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.error(w, http.StatusInternalServerError, "Failed to generate prompt")
		return
	}
	req := promptRequestFromForm(r)

	adType := ads.AdTypeImageToImage
	if parsed, err := ads.ParseAdType(r.FormValue("adType")); err == nil {
		adType = parsed
	}

	refined, err := a.Refiner.Refine(r.Context(), req, adType)
	if err != nil {
		a.Logger.Warn().Err(err).Msg("prompt refinement failed; using local template")
		a.json(w, http.StatusOK, promptResponse{Prompt: prompt.BuildAdPrompt(req)})
		return
	}
	a.json(w, http.StatusOK, promptResponse{Prompt: refined, Refined: true})
}
