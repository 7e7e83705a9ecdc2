package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g docs.go -o ../../docs --parseDependency

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"medi-weather/internal/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create app
	app, err := NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close store", "error", err)
		}
	}()

	app.Start(context.WithoutCancel(ctx))

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr())
	if err := app.Run(ctx, cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		stop()
		log.Fatal(err)
	}
}
