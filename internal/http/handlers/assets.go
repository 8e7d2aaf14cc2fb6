package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"adserver/pkg/zip"
)

// AssetDownload serves one generated asset from the local file store.
func (a *App) AssetDownload(w http.ResponseWriter, r *http.Request) {
	if a.Store == nil {
		a.error(w, http.StatusServiceUnavailable, "local asset storage not configured")
		return
	}
	filename := chi.URLParam(r, "filename")
	if filename == "" {
		a.error(w, http.StatusBadRequest, "filename required")
		return
	}
	data, err := a.Store.Read(r.Context(), filename)
	if err != nil {
		a.error(w, http.StatusNotFound, "asset not found")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// AssetsZip bundles every stored asset into one downloadable archive.
func (a *App) AssetsZip(w http.ResponseWriter, r *http.Request) {
	if a.Store == nil {
		a.error(w, http.StatusServiceUnavailable, "local asset storage not configured")
		return
	}
	keys, err := a.Store.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to list stored assets")
		a.error(w, http.StatusInternalServerError, "failed to list assets")
		return
	}
	var assets []zip.Asset
	for _, key := range keys {
		data, err := a.Store.Read(r.Context(), key)
		if err != nil {
			continue
		}
		assets = append(assets, zip.Asset{Filename: key, MIME: "image/png", Data: data})
	}
	archive := zip.ArchiveAssets(assets)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=generated-ads-%s.zip", time.Now().UTC().Format("20060102")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}
