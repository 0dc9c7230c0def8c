package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/shinyyama/astro-edit-backend/internal/ai"
	"github.com/shinyyama/astro-edit-backend/internal/config"
	"github.com/shinyyama/astro-edit-backend/internal/logging"
	"github.com/shinyyama/astro-edit-backend/internal/server"
	"github.com/shinyyama/astro-edit-backend/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load error")
	}
	logging.Init(cfg.LogLevel)

	client, err := ai.NewGenaiClient(context.Background(), cfg.GeminiAPIKey, "", nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create gemini client")
	}
	backoff := ai.Backoff{MaxRetries: cfg.RetryMax, BaseDelay: cfg.RetryBaseDelay}
	svc := service.NewProcessService(
		ai.NewFactsClient(client, cfg.FactsModel, backoff),
		ai.NewGeminiImageClient(client, cfg.ImageModel, backoff),
	)

	srv := server.New(cfg, svc)
	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("facts_model", cfg.FactsModel).Str("image_model", cfg.ImageModel).Msg("starting server")
	if err := srv.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
