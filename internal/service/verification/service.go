// Package verification moves recipients through
// Unverified -> Pending -> Verified using single-use email tokens.
// A pending token that expires falls back to Unverified the next time it
// is looked up.
package verification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/adapter/notify"
	"github.com/akinloluwami/formdrop/internal/domain"
)

type recipientRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipient, error)
	SetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.Recipient, error)
	ConsumeToken(ctx context.Context, tokenHash string, now time.Time) (*domain.Recipient, error)
	ClearExpiredToken(ctx context.Context, tokenHash string, now time.Time) (bool, error)
}

type formRepo interface {
	GetOwned(ctx context.Context, ownerID, id uuid.UUID) (*domain.Form, error)
}

type mailer interface {
	Send(ctx context.Context, msg notify.Message) error
}

type claimer interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// Config holds verification settings.
type Config struct {
	TokenTTL       time.Duration
	BaseURL        string
	ResendCooldown time.Duration
}

// Service issues and consumes recipient verification tokens.
type Service struct {
	recipients recipientRepo
	forms      formRepo
	mail       mailer
	cooldown   claimer
	cfg        Config
	log        *slog.Logger
	now        func() time.Time
	newToken   func() (raw, hash string, err error)
}

// NewService creates a verification service. cooldown may be nil, in which
// case verification emails are not throttled.
func NewService(
	log *slog.Logger,
	recipients recipientRepo,
	forms formRepo,
	mail mailer,
	cooldown claimer,
	cfg Config,
	newToken func() (string, string, error),
) *Service {
	return &Service{
		recipients: recipients,
		forms:      forms,
		mail:       mail,
		cooldown:   cooldown,
		cfg:        cfg,
		log:        log.With("service", "verification"),
		now:        func() time.Time { return time.Now().UTC() },
		newToken:   newToken,
	}
}
