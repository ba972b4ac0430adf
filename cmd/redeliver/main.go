// Command redeliver retries notification fan-outs that failed or were cut
// short, for example by a crash between accepting a submission and
// recording its deliveries. Targets that already succeeded are not sent
// again. It is intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akinloluwami/formdrop/internal/app"
	"github.com/akinloluwami/formdrop/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	res, err := app.RunRedeliver(ctx, cfg, logger)
	if err != nil {
		logger.Error("redelivery failed",
			slog.String("error", err.Error()),
			slog.Int("submissions", res.Submissions),
		)
		os.Exit(1)
	}

	logger.Info("redelivery completed",
		slog.Int("submissions", res.Submissions),
		slog.Int("success", res.Success),
		slog.Int("failure", res.Failure),
		slog.Int("skipped", res.Skipped),
	)
}
