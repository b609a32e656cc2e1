package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"numroute/internal/application"
	"numroute/internal/config"
	"numroute/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log := logx.NewLogger(os.Stderr, "info", false)
		log.Error("config.Load", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log := logx.NewLogger(os.Stdout, cfg.Log.Level, cfg.Log.NoColor)
	slog.SetDefault(log)

	if err := application.Run(ctx, log, cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log.Info("application stopped")
}
