package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"

	"hrdesk/internal/platform/config"
	"hrdesk/internal/platform/db"
	"hrdesk/internal/platform/logger"
)

// migrator runs a goose command (up, down, status, version, redo) against
// DATABASE_URL and seeds the bootstrap admin after "up".
func main() {
	flag.Parse()
	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.EnvProduction).Error("load config failed", logger.Err(err))
		os.Exit(1)
	}
	log := logger.New(cfg.Environment)

	if err := run(context.Background(), cfg, log, command, flag.Args()); err != nil {
		log.Error("migrator failed", "command", command, logger.Err(err))
		os.Exit(1)
	}
	log.Info("migrator finished", "command", command)
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger, command string, args []string) error {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	var extra []string
	if len(args) > 1 {
		extra = args[1:]
	}
	if err := goose.Run(command, sqlDB, cfg.MigrationsDir, extra...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	if command == "up" && cfg.RunSeed {
		log.Info("seeding bootstrap admin")
		return db.Seed(ctx, pool, cfg)
	}
	return nil
}
