// Package submission serves a form owner's view of collected submissions.
package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/domain"
	"github.com/akinloluwami/formdrop/pkg/ctxutil"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type formRepo interface {
	GetOwned(ctx context.Context, ownerID, id uuid.UUID) (*domain.Form, error)
}

type submissionRepo interface {
	Get(ctx context.Context, formID, id uuid.UUID) (*domain.Submission, error)
	ListByForm(ctx context.Context, formID uuid.UUID, limit, offset int) ([]domain.Submission, error)
	SoftDelete(ctx context.Context, formID, id uuid.UUID) error
}

type deliveryRepo interface {
	ListBySubmission(ctx context.Context, submissionID uuid.UUID) ([]domain.Delivery, error)
}

// Service lists and deletes submissions for their form's owner.
type Service struct {
	forms       formRepo
	submissions submissionRepo
	deliveries  deliveryRepo
	log         *slog.Logger
}

// NewService creates a new submission service.
func NewService(log *slog.Logger, forms formRepo, submissions submissionRepo, deliveries deliveryRepo) *Service {
	return &Service{
		forms:       forms,
		submissions: submissions,
		deliveries:  deliveries,
		log:         log.With("service", "submission"),
	}
}

// ListInput pages through a form's submissions.
type ListInput struct {
	FormID uuid.UUID
	Limit  int
	Offset int
}

// Validate checks paging bounds. A zero Limit means the default page size.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", maxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// List returns a page of live submissions, newest first.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.Submission, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.owned(ctx, in.FormID); err != nil {
		return nil, err
	}

	limit := in.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	subs, err := s.submissions.ListByForm(ctx, in.FormID, limit, in.Offset)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return subs, nil
}

// Detail is a submission with its delivery history.
type Detail struct {
	Submission *domain.Submission
	Deliveries []domain.Delivery
}

// Get returns one submission and its recorded deliveries.
func (s *Service) Get(ctx context.Context, formID, id uuid.UUID) (*Detail, error) {
	if err := s.owned(ctx, formID); err != nil {
		return nil, err
	}

	sub, err := s.submissions.Get(ctx, formID, id)
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	deliveries, err := s.deliveries.ListBySubmission(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return &Detail{Submission: sub, Deliveries: deliveries}, nil
}

// Delete soft-deletes a submission. The owner's monthly usage is not
// refunded.
func (s *Service) Delete(ctx context.Context, formID, id uuid.UUID) error {
	if err := s.owned(ctx, formID); err != nil {
		return err
	}
	if err := s.submissions.SoftDelete(ctx, formID, id); err != nil {
		return fmt.Errorf("delete submission: %w", err)
	}

	s.log.InfoContext(ctx, "submission deleted",
		slog.String("form_id", formID.String()),
		slog.String("submission_id", id.String()),
	)
	return nil
}

func (s *Service) owned(ctx context.Context, formID uuid.UUID) error {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if _, err := s.forms.GetOwned(ctx, ownerID, formID); err != nil {
		return err
	}
	return nil
}
