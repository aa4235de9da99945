package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hostel-portal/app/config"
	"hostel-portal/app/logger"
	"hostel-portal/app/server"
)

func main() {
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	config.AppConfig = cfg

	logger.Configure(logger.Config{Level: cfg.Logging.Level, Pretty: cfg.Logging.Pretty})

	app := server.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", cfg.Addr()).Str("backend", cfg.Backend.BaseURL).Str("mode", cfg.Server.Mode).Msg("portal starting")
		if err := app.Listen(cfg.Addr()); err != nil {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
}
