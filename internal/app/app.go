package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	natsadapter "github.com/akinloluwami/formdrop/internal/adapter/nats"
	"github.com/akinloluwami/formdrop/internal/adapter/notify"
	"github.com/akinloluwami/formdrop/internal/adapter/postgres"
	"github.com/akinloluwami/formdrop/internal/adapter/postgres/delivery"
	"github.com/akinloluwami/formdrop/internal/adapter/postgres/form"
	"github.com/akinloluwami/formdrop/internal/adapter/postgres/integration"
	"github.com/akinloluwami/formdrop/internal/adapter/postgres/recipient"
	"github.com/akinloluwami/formdrop/internal/adapter/postgres/submission"
	"github.com/akinloluwami/formdrop/internal/adapter/postgres/usage"
	"github.com/akinloluwami/formdrop/internal/adapter/postgres/user"
	redisadapter "github.com/akinloluwami/formdrop/internal/adapter/redis"
	"github.com/akinloluwami/formdrop/internal/auth"
	"github.com/akinloluwami/formdrop/internal/config"
	"github.com/akinloluwami/formdrop/internal/metrics"
	"github.com/akinloluwami/formdrop/internal/secret"
	"github.com/akinloluwami/formdrop/internal/service/dispatch"
	"github.com/akinloluwami/formdrop/internal/service/intake"
	"github.com/akinloluwami/formdrop/internal/service/quota"
	"github.com/akinloluwami/formdrop/internal/service/registry"
	submissionsvc "github.com/akinloluwami/formdrop/internal/service/submission"
	"github.com/akinloluwami/formdrop/internal/service/verification"
	"github.com/akinloluwami/formdrop/internal/transport/middleware"
	"github.com/akinloluwami/formdrop/internal/transport/rest"
)

type claimStore interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type eventPublisher interface {
	PublishAccepted(ctx context.Context, ev natsadapter.SubmissionAccepted) error
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the optional Redis and NATS backends, serves HTTP until
// ctx is canceled and then drains in-flight work.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	key, err := cfg.Secrets.Key()
	if err != nil {
		return err
	}

	m, err := metrics.New("formdrop")
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	health := rest.NewHealthHandler(pool, Version)

	// Redis and NATS are optional. Without Redis there is no delivery
	// dedupe and no resend cooldown; without NATS no events are published.
	var claims claimStore
	if rdb := connectRedis(ctx, cfg.Redis, logger); rdb != nil {
		defer rdb.Close()
		claims = redisadapter.NewClaims(rdb, redisadapter.KeyPrefix)
		health.WithOptional("redis", redisPing(rdb))
	}

	var events eventPublisher
	if cfg.NATS.URL != "" {
		pub, err := natsadapter.NewPublisher(cfg.NATS.URL, cfg.NATS.Subject, logger)
		if err != nil {
			logger.Warn("nats unavailable, events disabled", slog.String("error", err.Error()))
		} else {
			defer func() {
				if err := pub.Close(); err != nil {
					logger.Error("close nats publisher", slog.String("error", err.Error()))
				}
			}()
			events = pub
			health.WithOptional("nats", pub)
		}
	}

	// Repositories.
	forms := form.New(pool)
	recipients := recipient.New(pool)
	integrations := integration.New(pool)
	submissions := submission.New(pool)
	deliveries := delivery.New(pool)
	usages := usage.New(pool)
	users := user.New(pool)
	tx := postgres.NewTxManager(pool)

	mailer, senders := newSenders(cfg)

	// Services.
	quotaSvc := quota.NewService(logger, users, usages, cfg.Quota)
	registrySvc := registry.NewService(logger, forms, recipients, integrations, secret.NewBox(key))
	verificationSvc := verification.NewService(logger, recipients, forms, mailer, claims, verification.Config{
		TokenTTL:       cfg.Verification.TokenTTL,
		BaseURL:        cfg.Verification.BaseURL,
		ResendCooldown: cfg.Verification.ResendCooldown,
	}, auth.GenerateToken)
	dispatcher := newDispatcher(logger, cfg.Dispatch, senders, claims, deliveries, m)
	submissionSvc := submissionsvc.NewService(logger, forms, submissions, deliveries)
	coordinator := intake.NewCoordinator(logger, intake.Deps{
		Forms:       forms,
		Submissions: submissions,
		Quota:       quotaSvc,
		Tx:          tx,
		Targets:     registrySvc,
		Dispatcher:  dispatcher,
		Events:      events,
		Metrics:     m,
	}, intake.Config{MaxFields: cfg.Intake.MaxFields})

	// HTTP.
	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Health:       health,
		Intake:       rest.NewIntakeHandler(coordinator, cfg.Intake.MaxBodyBytes, logger),
		Verify:       rest.NewVerifyHandler(verificationSvc, logger),
		Owner:        rest.NewOwnerHandler(registrySvc, verificationSvc, submissionSvc, quotaSvc, logger),
		Tokens:       auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		RateLimiter:  limiter,
		IntakePerMin: cfg.Intake.RateLimitPerMin,
		VerifyPerMin: cfg.Verification.RateLimitPerMin,
		CORS:         cfg.CORS,
		TrustProxy:   cfg.Server.TrustProxy,
		Logger:       logger,
	})

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	return shutdown(logger, cfg.Server.ShutdownTimeout, server, coordinator)
}

// shutdown stops accepting requests, then waits for dispatches that are
// still running so no accepted submission loses its fan-out.
func shutdown(logger *slog.Logger, timeout time.Duration, server *http.Server, coordinator *intake.Coordinator) error {
	logger.Info("shutting down", slog.Duration("timeout", timeout))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	if err := server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := coordinator.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("drain dispatches: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

// connectRedis returns nil when Redis is not configured or unreachable.
func connectRedis(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) *goredis.Client {
	if cfg.URL == "" {
		return nil
	}
	rdb, err := redisadapter.Connect(ctx, cfg.URL)
	if err != nil {
		logger.Warn("redis unavailable, claims disabled", slog.String("error", err.Error()))
		return nil
	}
	return rdb
}

func newSenders(cfg *config.Config) (*notify.Mailer, dispatch.Senders) {
	mailer := notify.NewMailer(cfg.Mail)
	return mailer, dispatch.Senders{
		Mail:     mailer,
		Webhook:  notify.NewWebhook(nil),
		Sheets:   notify.NewSheets(cfg.Google, ""),
		Airtable: notify.NewAirtable(nil, ""),
	}
}

func newDispatcher(
	logger *slog.Logger,
	cfg config.DispatchConfig,
	senders dispatch.Senders,
	claims claimStore,
	deliveries *delivery.Repo,
	m *metrics.Metrics,
) *dispatch.Dispatcher {
	return dispatch.NewDispatcher(logger, senders, claims, deliveries, m, dispatch.Config{
		Timeout:     cfg.Timeout,
		MaxParallel: cfg.MaxParallel,
		DedupeTTL:   cfg.DedupeTTL,
	})
}

func redisPing(rdb *goredis.Client) rest.PingFunc {
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}
