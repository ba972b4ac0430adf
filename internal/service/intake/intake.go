package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	natsadapter "github.com/akinloluwami/formdrop/internal/adapter/nats"
	"github.com/akinloluwami/formdrop/internal/domain"
	"github.com/akinloluwami/formdrop/internal/service/dispatch"
	"github.com/akinloluwami/formdrop/internal/service/quota"
)

const maxFieldName = 200

// Intake validates, admits and persists a submission, then starts its
// dispatch in the background. Dispatch outcomes never affect the returned
// receipt.
func (c *Coordinator) Intake(ctx context.Context, in IntakeInput) (*Receipt, error) {
	receipt, err := c.intake(ctx, in)
	c.deps.Metrics.RecordIntake(ctx, outcomeCode(err))
	return receipt, err
}

func (c *Coordinator) intake(ctx context.Context, in IntakeInput) (*Receipt, error) {
	if err := c.validate(in); err != nil {
		return nil, err
	}

	form, err := c.deps.Forms.GetByID(ctx, in.FormID)
	if err != nil {
		return nil, keepOrUnavailable("load form", err)
	}
	if form.IsDeleted() {
		return nil, fmt.Errorf("form %s: %w", in.FormID, domain.ErrNotFound)
	}

	if !form.AllowsOrigin(in.Origin) {
		c.log.InfoContext(ctx, "origin rejected",
			slog.String("form_id", form.ID.String()),
			slog.String("origin", in.Origin),
		)
		return nil, fmt.Errorf("origin %q: %w", in.Origin, domain.ErrForbidden)
	}

	if !c.track() {
		return nil, fmt.Errorf("intake: shutting down: %w", domain.ErrServiceUnavailable)
	}

	var sub *domain.Submission
	err = c.deps.Tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := c.deps.Quota.Admit(ctx, form.UserID, quota.PeriodKey(c.now())); err != nil {
			return err
		}
		created, err := c.deps.Submissions.Create(ctx, form.ID, in.Payload)
		if err != nil {
			return err
		}
		sub = created
		return nil
	})
	if err != nil {
		c.inflight.Done()
		if errors.Is(err, domain.ErrQuotaExceeded) {
			return nil, err
		}
		return nil, keepOrUnavailable("persist submission", err)
	}

	c.log.InfoContext(ctx, "submission accepted",
		slog.String("form_id", form.ID.String()),
		slog.String("submission_id", sub.ID.String()),
	)

	c.publish(ctx, form, sub)

	receipt := &Receipt{SubmissionID: sub.ID, done: make(chan struct{})}
	go c.fanOut(context.WithoutCancel(ctx), form, sub, receipt)

	return receipt, nil
}

func (c *Coordinator) validate(in IntakeInput) error {
	var errs []domain.FieldError

	if len(in.Payload) == 0 {
		errs = append(errs, domain.FieldError{Field: "payload", Message: "must be a non-empty object"})
	}
	if len(in.Payload) > c.cfg.MaxFields {
		errs = append(errs, domain.FieldError{Field: "payload", Message: fmt.Sprintf("max %d fields", c.cfg.MaxFields)})
	}
	for k := range in.Payload {
		if strings.TrimSpace(k) == "" {
			errs = append(errs, domain.FieldError{Field: "payload", Message: "field names must not be empty"})
			break
		}
		if len(k) > maxFieldName {
			errs = append(errs, domain.FieldError{Field: "payload", Message: fmt.Sprintf("field names max %d characters", maxFieldName)})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// publish emits the accepted event. Failures are logged and counted only.
func (c *Coordinator) publish(ctx context.Context, form *domain.Form, sub *domain.Submission) {
	if c.deps.Events == nil {
		return
	}
	err := c.deps.Events.PublishAccepted(ctx, natsadapter.SubmissionAccepted{
		SubmissionID: sub.ID,
		FormID:       form.ID,
		UserID:       form.UserID,
		AcceptedAt:   sub.CreatedAt,
	})
	c.deps.Metrics.RecordPublish(ctx, err)
	if err != nil {
		c.log.WarnContext(ctx, "publish submission event failed",
			slog.String("submission_id", sub.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// fanOut resolves targets and dispatches. It runs detached from the
// request so a disconnecting client does not cancel delivery.
func (c *Coordinator) fanOut(ctx context.Context, form *domain.Form, sub *domain.Submission, receipt *Receipt) {
	defer c.inflight.Done()
	defer close(receipt.done)

	defer func() {
		if r := recover(); r != nil {
			c.log.ErrorContext(ctx, "dispatch panic",
				slog.String("submission_id", sub.ID.String()),
				slog.Any("panic", r),
			)
		}
	}()

	targets, err := c.deps.Targets.ResolveTargets(ctx, form.ID)
	if err != nil {
		c.log.ErrorContext(ctx, "resolve targets failed",
			slog.String("submission_id", sub.ID.String()),
			slog.String("error", err.Error()),
		)
		receipt.report = dispatch.Report{SubmissionID: sub.ID.String()}
		return
	}

	receipt.report = c.deps.Dispatcher.Dispatch(ctx, sub, form, targets)
}

// keepOrUnavailable passes domain errors through and reports anything
// else as ErrServiceUnavailable.
func keepOrUnavailable(op string, err error) error {
	for _, known := range []error{
		domain.ErrNotFound,
		domain.ErrValidation,
		domain.ErrForbidden,
		domain.ErrQuotaExceeded,
		domain.ErrServiceUnavailable,
	} {
		if errors.Is(err, known) {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return domain.Unavailable(op, err)
}
