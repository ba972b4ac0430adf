// Command cleanup-tokens clears verification tokens that expired before
// being used, returning those recipients to the unverified state.
//
// Usage:
//
//	cleanup-tokens
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/akinloluwami/formdrop/internal/adapter/postgres"
	"github.com/akinloluwami/formdrop/internal/adapter/postgres/recipient"
	"github.com/akinloluwami/formdrop/internal/app"
	"github.com/akinloluwami/formdrop/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	cleared, err := recipient.New(pool).ClearAllExpiredTokens(ctx, time.Now().UTC())
	if err != nil {
		logger.Error("clear expired tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("expired verification tokens cleared", slog.Int("cleared", cleared))
}
