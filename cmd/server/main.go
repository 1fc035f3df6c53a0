package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"hrdesk/internal/app/server"
	"hrdesk/internal/platform/config"
	"hrdesk/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.EnvProduction).Error("load config failed", logger.Err(err))
		os.Exit(1)
	}
	log := logger.New(cfg.Environment)
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", logger.Err(err))
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", logger.Err(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := server.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run(ctx)
}
