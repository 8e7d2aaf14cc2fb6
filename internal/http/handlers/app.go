package handlers

import (
	"encoding/json"
	"net/http"

	"adserver/internal/domain/ads"
	"adserver/internal/infra"
	"adserver/internal/providers/prompt"
	"adserver/internal/storage"
)

// App bundles the dependencies shared by all HTTP handlers. SQL and Store are
// optional: when nil, the persistence and local-asset features respond with
// 503 and the core generation pipeline keeps working unchanged.
type App struct {
	Config    *infra.Config
	Logger    infra.Logger
	Generator ads.Generator
	Refiner   *prompt.Refiner
	SQL       infra.SQLExecutor
	Store     *storage.FileStore
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"error": message})
}
