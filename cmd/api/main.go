package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"adserver/internal/http/handlers"
	httpapi "adserver/internal/http/httpapi"
	"adserver/internal/infra"
	"adserver/internal/infra/geoip"
	"adserver/internal/middleware"
	"adserver/internal/providers/genai"
	"adserver/internal/providers/prompt"
	"adserver/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	if cfg.GoogleAIAPIKey == "" {
		logger.Warn().Msg("GOOGLE_AI_API_KEY is not set; generation requests will fail upstream")
	}

	// One long-lived upstream client handle, shared by all requests.
	client := genai.NewClient(genai.Options{
		APIKey:          cfg.GoogleAIAPIKey,
		BaseURL:         cfg.GeminiBaseURL,
		Model:           cfg.GeminiModel,
		TextModel:       cfg.GeminiTextModel,
		GenerateTimeout: cfg.GenerateTimeout,
		DownloadTimeout: cfg.DownloadTimeout,
		Logger:          &logger,
	})

	app := &handlers.App{
		Config:    cfg,
		Logger:    logger,
		Generator: client,
		Refiner:   prompt.NewRefiner(client),
	}

	ctx := context.Background()
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		app.SQL = infra.NewSQLRunner(pool, logger)
	} else {
		logger.Info().Msg("DATABASE_URL not set; campaign persistence disabled")
	}

	if cfg.StoragePath != "" {
		store, err := storage.NewFileStore(cfg.StoragePath)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize asset storage")
		}
		app.Store = store
	}

	var countryLookup middleware.CountryLookup
	if resolver, err := geoip.NewResolver(cfg.GeoIPDBPath); err != nil {
		logger.Warn().Err(err).Msg("geoip resolver unavailable; locale falls back to headers")
	} else if resolver != nil {
		defer func() {
			if closer, ok := resolver.(interface{ Close() error }); ok {
				_ = closer.Close()
			}
		}()
		countryLookup = resolver.CountryCode
	}

	router := httpapi.NewRouter(app, countryLookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
