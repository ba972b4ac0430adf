// Package quota enforces monthly submission limits per owner plan.
package quota

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/domain"
)

// PeriodLayout formats a usage period key.
const PeriodLayout = "2006-01"

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type usageRepo interface {
	Increment(ctx context.Context, userID uuid.UUID, period string, limit int) (int, error)
	Get(ctx context.Context, userID uuid.UUID, period string) (int, error)
}

// Limits maps a plan to its monthly submission limit.
type Limits interface {
	LimitFor(plan domain.Plan) int
}

// Service admits submissions against the owner's monthly limit.
type Service struct {
	users  userRepo
	usage  usageRepo
	limits Limits
	log    *slog.Logger
}

// NewService creates a new quota service.
func NewService(log *slog.Logger, users userRepo, usage usageRepo, limits Limits) *Service {
	return &Service{
		users:  users,
		usage:  usage,
		limits: limits,
		log:    log.With("service", "quota"),
	}
}

// PeriodKey returns the UTC calendar month containing t.
func PeriodKey(t time.Time) string {
	return t.UTC().Format(PeriodLayout)
}

// Admission is the result of a successful Admit.
type Admission struct {
	UserID uuid.UUID
	Period string
	Count  int
	Limit  int
}

// failClosed keeps quota and not-found errors and turns everything else
// into ErrServiceUnavailable.
func failClosed(op string, err error) error {
	if errors.Is(err, domain.ErrQuotaExceeded) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrServiceUnavailable) {
		return err
	}
	return domain.Unavailable(op, err)
}
