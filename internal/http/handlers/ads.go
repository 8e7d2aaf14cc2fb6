package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"adserver/internal/domain/ads"
	"adserver/internal/middleware"
	"adserver/internal/providers/prompt"
	"adserver/internal/sqlinline"
)

const maxAdFormMemory = 10 << 20

// GenerateAd runs the full pipeline for one ad request: normalize the form
// into a canonical GenerationRequest, dispatch to the generator, and project
// the result onto the wire contract. Validation failures and every upstream
// failure mode come back as {success:false, error} with status 500; nothing
// propagates as an uncaught fault.
func (a *App) GenerateAd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAdFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		a.json(w, http.StatusInternalServerError, ads.GenerateAdResponse{Success: false, Error: "Failed to start ad generation"})
		return
	}

	req, err := ads.NormalizeForm(r.Form)
	if err != nil {
		a.Logger.Warn().Err(err).Msg("ad request rejected")
		a.json(w, http.StatusInternalServerError, ads.GenerateAdResponse{Success: false, Error: err.Error()})
		return
	}

	genPrompt := req.Prompt
	if hint := prompt.TypographyHint(middleware.LocaleFromContext(r.Context()), a.Config.DefaultLocale); hint != "" && genPrompt != "" {
		genPrompt += "\n" + hint
	}

	var result *ads.GenerationResult
	switch req.AdType {
	case ads.AdTypeImageToVideo:
		result, err = a.Generator.GenerateVideoFromImage(r.Context(), req.SourceImageURL, genPrompt, ads.DefaultVideoDuration)
	default:
		result, err = a.Generator.GenerateImageFromImage(r.Context(), req.SourceImageURL, genPrompt)
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("ad generation did not run")
		a.json(w, http.StatusInternalServerError, ads.GenerateAdResponse{Success: false, Error: "Failed to start ad generation"})
		return
	}

	if result.Success {
		a.recordAsset(r, req, result)
		a.storeAsset(r, result)
	}
	a.recordUsage(r, "AD_GENERATE", result.Success)

	resp := ads.Project(result, req.AdType)
	status := http.StatusOK
	if !resp.Success {
		status = http.StatusInternalServerError
	}
	a.json(w, status, resp)
}

// recordAsset persists a generated-asset row when a database is configured.
// Best effort: a persistence hiccup must not fail a generation that already
// succeeded.
func (a *App) recordAsset(r *http.Request, req *ads.GenerationRequest, result *ads.GenerationResult) {
	if a.SQL == nil {
		return
	}
	mimeType := "image/png"
	if req.AdType == ads.AdTypeImageToVideo {
		mimeType = "video/mp4"
	}
	fileSize := base64.StdEncoding.DecodedLen(len(result.ImageData))
	if _, err := a.SQL.Exec(r.Context(), sqlinline.QInsertAdAsset,
		uuid.New(), req.ProductID, req.ImageID, string(req.AdType),
		req.Prompt, result.Filename, result.ThumbnailURL, int64(fileSize), mimeType,
	); err != nil {
		a.Logger.Warn().Err(err).Msg("failed to record generated asset")
	}
}

// storeAsset writes the generated image to the local file store when one is
// configured, also best effort.
func (a *App) storeAsset(r *http.Request, result *ads.GenerationResult) {
	if a.Store == nil || result.ImageData == "" {
		return
	}
	data, err := base64.StdEncoding.DecodeString(result.ImageData)
	if err != nil {
		a.Logger.Warn().Err(err).Msg("generated image payload is not valid base64")
		return
	}
	if _, err := a.Store.Write(r.Context(), result.Filename, data); err != nil {
		a.Logger.Warn().Err(err).Str("filename", result.Filename).Msg("failed to store generated asset")
	}
}

func (a *App) recordUsage(r *http.Request, eventType string, success bool) {
	if a.SQL == nil {
		return
	}
	props, _ := json.Marshal(map[string]any{"locale": middleware.LocaleFromContext(r.Context())})
	_, _ = a.SQL.Exec(r.Context(), sqlinline.QInsertUsageEvent, eventType, success, props)
}
