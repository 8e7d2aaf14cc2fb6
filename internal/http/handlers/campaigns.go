package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"adserver/internal/domain/ads"
	"adserver/internal/sqlinline"
)

type campaignRecord struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ProductID      string `json:"productId"`
	ImageURL       string `json:"imageUrl,omitempty"`
	AdType         string `json:"adType"`
	Prompt         string `json:"prompt,omitempty"`
	TargetAudience string `json:"targetAudience,omitempty"`
	Tone           string `json:"tone,omitempty"`
	Purpose        string `json:"purpose,omitempty"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
}

// CampaignCreate stores a draft campaign from the posted form. The campaign
// itself triggers no generation; it is the record the admin UI later attaches
// generated assets to.
func (a *App) CampaignCreate(w http.ResponseWriter, r *http.Request) {
	if a.SQL == nil {
		a.error(w, http.StatusServiceUnavailable, "persistence not configured")
		return
	}
	if err := r.ParseForm(); err != nil {
		a.error(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	name := r.FormValue("campaignName")
	if name == "" {
		a.error(w, http.StatusBadRequest, "campaignName required")
		return
	}
	adType, err := ads.ParseAdType(r.FormValue("adType"))
	if err != nil {
		a.error(w, http.StatusBadRequest, err.Error())
		return
	}

	id := uuid.New()
	row := a.SQL.QueryRow(r.Context(), sqlinline.QInsertCampaign,
		id, name, r.FormValue("productId"), r.FormValue("imageUrl"), string(adType),
		r.FormValue("prompt"), r.FormValue("targetAudience"), r.FormValue("tone"), r.FormValue("purpose"),
	)
	var returnedID uuid.UUID
	var createdAt time.Time
	if err := row.Scan(&returnedID, &createdAt); err != nil {
		a.Logger.Error().Err(err).Msg("failed to create campaign")
		a.error(w, http.StatusInternalServerError, "failed to create campaign")
		return
	}

	a.json(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Campaign created successfully!",
		"campaign": campaignRecord{
			ID:             returnedID.String(),
			Name:           name,
			ProductID:      r.FormValue("productId"),
			ImageURL:       r.FormValue("imageUrl"),
			AdType:         string(adType),
			Prompt:         r.FormValue("prompt"),
			TargetAudience: r.FormValue("targetAudience"),
			Tone:           r.FormValue("tone"),
			Purpose:        r.FormValue("purpose"),
			Status:         "DRAFT",
			CreatedAt:      createdAt.UTC().Format(time.RFC3339),
		},
	})
}

// CampaignList returns stored campaigns, newest first.
func (a *App) CampaignList(w http.ResponseWriter, r *http.Request) {
	if a.SQL == nil {
		a.error(w, http.StatusServiceUnavailable, "persistence not configured")
		return
	}

	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	rows, err := a.SQL.Query(r.Context(), sqlinline.QListCampaigns, limit, offset)
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to list campaigns")
		a.error(w, http.StatusInternalServerError, "failed to list campaigns")
		return
	}
	defer rows.Close()

	items := []campaignRecord{}
	for rows.Next() {
		var rec campaignRecord
		var id uuid.UUID
		var createdAt time.Time
		if err := rows.Scan(&id, &rec.Name, &rec.ProductID, &rec.ImageURL, &rec.AdType,
			&rec.Prompt, &rec.TargetAudience, &rec.Tone, &rec.Purpose, &rec.Status, &createdAt); err != nil {
			continue
		}
		rec.ID = id.String()
		rec.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		items = append(items, rec)
	}

	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			return i
		}
	}
	return fallback
}
