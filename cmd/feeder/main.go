package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/config"
	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/feeder"
	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.ParseFeederConfig()

	log, err := logger.Initialize(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := feeder.NewApp(cfg, log)
	if err := app.Initialize(ctx); err != nil {
		log.Fatal("failed to initialize feeder", zap.Error(err))
	}
	defer app.Close()

	// Сбои отдельных итераций не влияют на код выхода процесса
	app.Run(ctx)
}
