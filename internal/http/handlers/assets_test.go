package handlers

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"adserver/internal/storage"
)

func newStoreApp(t *testing.T) *App {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	app := newTestApp(&stubGenerator{})
	app.Store = store
	return app
}

func getAsset(t *testing.T, app *App, filename string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/assets/"+filename, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("filename", filename)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()
	app.AssetDownload(rec, req)
	return rec
}

func TestAssetDownload(t *testing.T) {
	app := newStoreApp(t)
	if _, err := app.Store.Write(context.Background(), "generated-ad-1.png", []byte("pixels")); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	rec := getAsset(t, app, "generated-ad-1.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Fatalf("Content-Type = %q", got)
	}
	if rec.Body.String() != "pixels" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestAssetDownloadMissing(t *testing.T) {
	app := newStoreApp(t)
	if rec := getAsset(t, app, "nope.png"); rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAssetDownloadWithoutStore(t *testing.T) {
	app := newTestApp(&stubGenerator{})
	if rec := getAsset(t, app, "x.png"); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAssetsZip(t *testing.T) {
	app := newStoreApp(t)
	for _, name := range []string{"generated-ad-1.png", "generated-ad-2.png"} {
		if _, err := app.Store.Write(context.Background(), name, []byte(name)); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/assets.zip", nil)
	rec := httptest.NewRecorder()
	app.AssetsZip(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/zip" {
		t.Fatalf("Content-Type = %q", got)
	}

	zr, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("archive entries = %d", len(zr.File))
	}
	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	if !names["generated-ad-1.png"] || !names["generated-ad-2.png"] {
		t.Fatalf("unexpected entries: %v", names)
	}
}
