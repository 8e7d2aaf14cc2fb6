package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"adserver/internal/http/handlers"
	"adserver/internal/middleware"
)

// NewRouter wires the HTTP surface: the prompt and generation endpoints of
// the ad pipeline plus the optional campaign and asset routes.
func NewRouter(app *handlers.App, countryLookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(app.Config.AllowedOrigins),
		middleware.I18N(app.Config.DefaultLocale, countryLookup),
	)
	if app.Config.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute))
	}

	r.Get("/v1/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-prompt", app.GeneratePrompt)
		r.Post("/enhance-prompt", app.EnhancePrompt)
		r.Post("/generate-ad", app.GenerateAd)

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", app.CampaignCreate)
			r.Get("/", app.CampaignList)
		})

		r.Get("/assets.zip", app.AssetsZip)
		r.Get("/assets/{filename}", app.AssetDownload)
	})

	return r
}
