// Package intake accepts public submissions. A submission moves
// Received -> QuotaChecked -> Persisted -> Dispatched -> Complete, or
// Received -> Rejected. The submitter gets an answer once the submission
// is persisted; fan-out continues in the background.
package intake

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	natsadapter "github.com/akinloluwami/formdrop/internal/adapter/nats"
	"github.com/akinloluwami/formdrop/internal/domain"
	"github.com/akinloluwami/formdrop/internal/metrics"
	"github.com/akinloluwami/formdrop/internal/service/dispatch"
	"github.com/akinloluwami/formdrop/internal/service/quota"
)

type formRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Form, error)
}

type submissionRepo interface {
	Create(ctx context.Context, formID uuid.UUID, payload map[string]any) (*domain.Submission, error)
}

type admitter interface {
	Admit(ctx context.Context, userID uuid.UUID, period string) (quota.Admission, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type targetResolver interface {
	ResolveTargets(ctx context.Context, formID uuid.UUID) ([]domain.DispatchTarget, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, sub *domain.Submission, form *domain.Form, targets []domain.DispatchTarget) dispatch.Report
}

type eventPublisher interface {
	PublishAccepted(ctx context.Context, ev natsadapter.SubmissionAccepted) error
}

// Config bounds accepted payloads.
type Config struct {
	MaxFields int
}

// Deps groups the collaborators of a Coordinator. Events may be nil.
type Deps struct {
	Forms       formRepo
	Submissions submissionRepo
	Quota       admitter
	Tx          txManager
	Targets     targetResolver
	Dispatcher  dispatcher
	Events      eventPublisher
	Metrics     *metrics.Metrics
}

// Coordinator runs the intake pipeline.
type Coordinator struct {
	deps Deps
	cfg  Config
	log  *slog.Logger
	now  func() time.Time

	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup
}

// NewCoordinator creates an intake coordinator.
func NewCoordinator(log *slog.Logger, deps Deps, cfg Config) *Coordinator {
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewNoop()
	}
	if cfg.MaxFields <= 0 {
		cfg.MaxFields = 100
	}
	return &Coordinator{
		deps: deps,
		cfg:  cfg,
		log:  log.With("service", "intake"),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// IntakeInput is one inbound submission.
type IntakeInput struct {
	FormID  uuid.UUID
	Payload map[string]any
	Origin  string
}

// Receipt acknowledges a persisted submission.
type Receipt struct {
	SubmissionID uuid.UUID

	done   chan struct{}
	report dispatch.Report
}

// Wait blocks until the submission's dispatch completes or ctx ends.
func (r *Receipt) Wait(ctx context.Context) (dispatch.Report, error) {
	select {
	case <-r.done:
		return r.report, nil
	case <-ctx.Done():
		return dispatch.Report{}, ctx.Err()
	}
}

// Shutdown stops accepting submissions and waits for in-flight dispatches
// to finish or ctx to end.
func (c *Coordinator) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// track registers one background dispatch. Returns false after Shutdown.
func (c *Coordinator) track() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.inflight.Add(1)
	return true
}

// outcomeCode names an intake decision for metrics.
func outcomeCode(err error) string {
	switch {
	case err == nil:
		return "accepted"
	case errors.Is(err, domain.ErrValidation):
		return "validation_error"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrQuotaExceeded):
		return "quota_exceeded"
	default:
		return "service_unavailable"
	}
}
