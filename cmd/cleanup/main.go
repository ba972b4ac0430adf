// Command cleanup physically removes submissions past the retention period
// and soft-deleted submissions older than the deleted-retention window.
// Their delivery records go with them. It is intended to be invoked by an
// external cron job, not as an in-process goroutine.
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
	"github.com/akinloluwami/formdrop/internal/adapter/postgres/submission"
	"github.com/akinloluwami/formdrop/internal/app"
	"github.com/akinloluwami/formdrop/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := submission.New(pool)

	now := time.Now()
	createdBefore := now.AddDate(0, 0, -cfg.Retention.SubmissionDays)
	deletedBefore := now.AddDate(0, 0, -cfg.Retention.DeletedDays)

	purged, err := repo.Purge(ctx, createdBefore, deletedBefore)
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Time("created_before", createdBefore),
			slog.Time("deleted_before", deletedBefore),
		)
		os.Exit(1)
	}

	logger.Info("purge completed",
		slog.Int("purged", purged),
		slog.Time("created_before", createdBefore),
		slog.Time("deleted_before", deletedBefore),
	)
}
