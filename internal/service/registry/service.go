// Package registry owns the fan-out configuration of a form: its email
// recipients and channel integrations. It decides which targets receive a
// submission.
package registry

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/domain"
	"github.com/akinloluwami/formdrop/pkg/ctxutil"
)

type formRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Form, error)
	GetOwned(ctx context.Context, ownerID, id uuid.UUID) (*domain.Form, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Form, error)
	Create(ctx context.Context, f *domain.Form) (*domain.Form, error)
	SetEmailEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*domain.Form, error)
	SetAllowedOrigins(ctx context.Context, id uuid.UUID, origins []string) (*domain.Form, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type recipientRepo interface {
	Create(ctx context.Context, formID uuid.UUID, email string) (*domain.Recipient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipient, error)
	ListByForm(ctx context.Context, formID uuid.UUID) ([]domain.Recipient, error)
	ListDeliverable(ctx context.Context, formID uuid.UUID) ([]domain.Recipient, error)
	SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*domain.Recipient, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type integrationRepo interface {
	Connect(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind, sealed []byte) (*domain.ChannelIntegration, error)
	Get(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind) (*domain.ChannelIntegration, error)
	ListByForm(ctx context.Context, formID uuid.UUID) ([]domain.ChannelIntegration, error)
	ListActive(ctx context.Context, formID uuid.UUID) ([]domain.ChannelIntegration, error)
	SetEnabled(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind, enabled bool) (*domain.ChannelIntegration, error)
	Disconnect(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind) error
}

type sealer interface {
	Seal(creds *domain.Credentials) ([]byte, error)
	Open(sealed []byte) (*domain.Credentials, error)
}

// Service manages recipients and integrations and resolves dispatch
// targets.
type Service struct {
	forms        formRepo
	recipients   recipientRepo
	integrations integrationRepo
	box          sealer
	log          *slog.Logger
	now          func() time.Time
}

// NewService creates a new registry service.
func NewService(
	log *slog.Logger,
	forms formRepo,
	recipients recipientRepo,
	integrations integrationRepo,
	box sealer,
) *Service {
	return &Service{
		forms:        forms,
		recipients:   recipients,
		integrations: integrations,
		box:          box,
		log:          log.With("service", "registry"),
		now:          time.Now,
	}
}

// ownedForm loads formID if the caller owns it. Forms owned by others are
// reported as ErrNotFound.
func (s *Service) ownedForm(ctx context.Context, formID uuid.UUID) (*domain.Form, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.forms.GetOwned(ctx, ownerID, formID)
}

// ownedRecipient loads a recipient whose form the caller owns.
func (s *Service) ownedRecipient(ctx context.Context, recipientID uuid.UUID) (*domain.Recipient, error) {
	if _, ok := ctxutil.OwnerIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	rec, err := s.recipients.GetByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedForm(ctx, rec.FormID); err != nil {
		return nil, err
	}
	return rec, nil
}
