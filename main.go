package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/robalobadob/numberguess/internal/config"
	"github.com/robalobadob/numberguess/internal/game"
	"github.com/robalobadob/numberguess/internal/httpserver"
	"github.com/robalobadob/numberguess/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg)

	var rng game.Generator
	if cfg.Seed != 0 {
		rng = game.NewSeededGenerator(cfg.Seed)
		log.Warn().Uint64("seed", cfg.Seed).Msg("using fixed seed; secrets are predictable")
	}

	srv, err := httpserver.New(store.NewMemoryStore(), cfg, rng)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info().Str("port", cfg.Port).Bool("debug", cfg.Debug).Msg("starting numberguess")
	if err := srv.Start(ctx, cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
