// Package redelivery re-runs dispatch for accepted submissions whose
// fan-out failed or never finished. Targets already delivered are left
// alone, and the dispatcher's claims keep a target that was sent before a
// crash from being notified twice.
package redelivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/domain"
	"github.com/akinloluwami/formdrop/internal/service/dispatch"
)

type submissionRepo interface {
	ListRedeliverable(ctx context.Context, since, before time.Time, maxAttempts, limit int) ([]domain.Submission, error)
}

type formRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Form, error)
}

type deliveryRepo interface {
	ListBySubmission(ctx context.Context, submissionID uuid.UUID) ([]domain.Delivery, error)
}

type targetResolver interface {
	ResolveTargets(ctx context.Context, formID uuid.UUID) ([]domain.DispatchTarget, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, sub *domain.Submission, form *domain.Form, targets []domain.DispatchTarget) dispatch.Report
}

// Config holds redelivery settings.
type Config struct {
	// Window is how far back submissions are considered.
	Window time.Duration
	// Grace skips submissions younger than this, whose first fan-out may
	// still be running.
	Grace       time.Duration
	MaxAttempts int
	BatchSize   int
}

// Result summarizes one run.
type Result struct {
	Submissions int
	Success     int
	Failure     int
	Skipped     int
}

// Service finds unfinished fan-outs and dispatches them again.
type Service struct {
	submissions submissionRepo
	forms       formRepo
	deliveries  deliveryRepo
	targets     targetResolver
	dispatcher  dispatcher
	cfg         Config
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new redelivery service.
func NewService(
	log *slog.Logger,
	submissions submissionRepo,
	forms formRepo,
	deliveries deliveryRepo,
	targets targetResolver,
	d dispatcher,
	cfg Config,
) *Service {
	if cfg.Window <= 0 {
		cfg.Window = 24 * time.Hour
	}
	if cfg.Grace <= 0 {
		cfg.Grace = 5 * time.Minute
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &Service{
		submissions: submissions,
		forms:       forms,
		deliveries:  deliveries,
		targets:     targets,
		dispatcher:  d,
		cfg:         cfg,
		log:         log.With("service", "redelivery"),
		now:         time.Now,
	}
}

// Run processes one batch of redeliverable submissions. A submission that
// cannot be processed is logged and left for the next run; the joined
// errors are returned with the partial result.
func (s *Service) Run(ctx context.Context) (Result, error) {
	now := s.now().UTC()
	subs, err := s.submissions.ListRedeliverable(ctx, now.Add(-s.cfg.Window), now.Add(-s.cfg.Grace), s.cfg.MaxAttempts, s.cfg.BatchSize)
	if err != nil {
		return Result{}, fmt.Errorf("list redeliverable: %w", err)
	}

	var (
		res  Result
		errs []error
	)
	for i := range subs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		report, err := s.redeliver(ctx, &subs[i])
		if err != nil {
			s.log.WarnContext(ctx, "redelivery failed",
				slog.String("submission_id", subs[i].ID.String()),
				slog.String("error", err.Error()),
			)
			errs = append(errs, err)
			continue
		}
		if len(report.Outcomes) == 0 {
			continue
		}

		res.Submissions++
		res.Success += report.Count(domain.DeliverySuccess)
		res.Failure += report.Count(domain.DeliveryFailure)
		res.Skipped += report.Count(domain.DeliverySkipped)
	}

	return res, errors.Join(errs...)
}

func (s *Service) redeliver(ctx context.Context, sub *domain.Submission) (dispatch.Report, error) {
	form, err := s.forms.GetByID(ctx, sub.FormID)
	if errors.Is(err, domain.ErrNotFound) {
		return dispatch.Report{}, nil
	}
	if err != nil {
		return dispatch.Report{}, fmt.Errorf("submission %s: load form: %w", sub.ID, err)
	}
	if form.IsDeleted() {
		return dispatch.Report{}, nil
	}

	history, err := s.deliveries.ListBySubmission(ctx, sub.ID)
	if err != nil {
		return dispatch.Report{}, fmt.Errorf("submission %s: list deliveries: %w", sub.ID, err)
	}

	targets, err := s.targets.ResolveTargets(ctx, form.ID)
	if err != nil {
		return dispatch.Report{}, fmt.Errorf("submission %s: %w", sub.ID, err)
	}

	pending := PendingTargets(targets, history, s.cfg.MaxAttempts)
	if len(pending) == 0 {
		return dispatch.Report{}, nil
	}

	return s.dispatcher.Dispatch(ctx, sub, form, pending), nil
}

// PendingTargets picks the targets that still owe a notification. With no
// history every target is pending, since the first fan-out never recorded
// anything. Otherwise only targets that have failed every attempt so far,
// fewer than maxAttempts times, are pending; targets added to the form after
// the submission are not.
func PendingTargets(targets []domain.DispatchTarget, history []domain.Delivery, maxAttempts int) []domain.DispatchTarget {
	if len(history) == 0 {
		return targets
	}

	type tally struct {
		attempts int
		done     bool
	}
	byKey := make(map[string]*tally, len(history))
	for _, d := range history {
		t, ok := byKey[d.TargetKey]
		if !ok {
			t = &tally{}
			byKey[d.TargetKey] = t
		}
		t.attempts++
		if d.Status != domain.DeliveryFailure {
			t.done = true
		}
	}

	var pending []domain.DispatchTarget
	for _, target := range targets {
		t, ok := byKey[target.Key()]
		if !ok || t.done || t.attempts >= maxAttempts {
			continue
		}
		pending = append(pending, target)
	}
	return pending
}
