package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gungnir/internal/api"
	"gungnir/internal/config"
	"gungnir/internal/engine"
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(level)

	// One book per configured pair, fixed for the process lifetime.
	registry := engine.NewRegistry(cfg.Pairs...)
	srv := api.NewServer(cfg.Addr(), []byte(cfg.JWTSecret), registry)

	log.Info().
		Strs("pairs", registry.Pairs()).
		Str("addr", cfg.Addr()).
		Msg("starting order book service")

	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
