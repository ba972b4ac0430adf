package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akinloluwami/formdrop/internal/adapter/postgres"
	"github.com/akinloluwami/formdrop/internal/adapter/postgres/delivery"
	"github.com/akinloluwami/formdrop/internal/adapter/postgres/form"
	"github.com/akinloluwami/formdrop/internal/adapter/postgres/integration"
	"github.com/akinloluwami/formdrop/internal/adapter/postgres/recipient"
	"github.com/akinloluwami/formdrop/internal/adapter/postgres/submission"
	redisadapter "github.com/akinloluwami/formdrop/internal/adapter/redis"
	"github.com/akinloluwami/formdrop/internal/config"
	"github.com/akinloluwami/formdrop/internal/metrics"
	"github.com/akinloluwami/formdrop/internal/secret"
	"github.com/akinloluwami/formdrop/internal/service/redelivery"
	"github.com/akinloluwami/formdrop/internal/service/registry"
)

// RunRedeliver dispatches one batch of submissions whose fan-out failed or
// was lost, using the same channel clients and claim store as the server.
func RunRedeliver(ctx context.Context, cfg *config.Config, logger *slog.Logger) (redelivery.Result, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return redelivery.Result{}, err
	}
	defer pool.Close()

	key, err := cfg.Secrets.Key()
	if err != nil {
		return redelivery.Result{}, err
	}

	m, err := metrics.New("formdrop")
	if err != nil {
		return redelivery.Result{}, fmt.Errorf("init metrics: %w", err)
	}

	var claims claimStore
	if rdb := connectRedis(ctx, cfg.Redis, logger); rdb != nil {
		defer rdb.Close()
		claims = redisadapter.NewClaims(rdb, redisadapter.KeyPrefix)
	} else {
		logger.Warn("redelivering without claims, targets sent before a crash may be notified twice")
	}

	forms := form.New(pool)
	deliveries := delivery.New(pool)
	registrySvc := registry.NewService(logger, forms, recipient.New(pool), integration.New(pool), secret.NewBox(key))

	_, senders := newSenders(cfg)
	dispatcher := newDispatcher(logger, cfg.Dispatch, senders, claims, deliveries, m)

	svc := redelivery.NewService(logger, submission.New(pool), forms, deliveries, registrySvc, dispatcher, redelivery.Config{
		Window:      cfg.Dispatch.RedeliverWindow,
		Grace:       cfg.Dispatch.RedeliverGrace,
		MaxAttempts: cfg.Dispatch.MaxAttempts,
		BatchSize:   cfg.Dispatch.RedeliverBatch,
	})
	return svc.Run(ctx)
}
