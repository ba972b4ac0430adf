package quota

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/domain"
)

// Admit counts one submission for userID in period. It returns
// ErrQuotaExceeded without incrementing when the plan limit is reached and
// ErrServiceUnavailable when the counter cannot be read or written.
func (s *Service) Admit(ctx context.Context, userID uuid.UUID, period string) (Admission, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Admission{}, failClosed("quota: load owner", err)
	}

	limit := s.limits.LimitFor(user.Plan)

	count, err := s.usage.Increment(ctx, userID, period, limit)
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			s.log.InfoContext(ctx, "quota exceeded",
				slog.String("user_id", userID.String()),
				slog.String("period", period),
				slog.Int("limit", limit),
			)
		}
		return Admission{}, failClosed("quota: increment", err)
	}

	return Admission{UserID: userID, Period: period, Count: count, Limit: limit}, nil
}

// Usage returns the owner's count and limit for period without changing it.
func (s *Service) Usage(ctx context.Context, userID uuid.UUID, period string) (domain.Usage, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.Usage{}, fmt.Errorf("quota: load owner: %w", err)
	}

	count, err := s.usage.Get(ctx, userID, period)
	if err != nil {
		return domain.Usage{}, fmt.Errorf("quota: get usage: %w", err)
	}

	return domain.Usage{
		UserID: userID,
		Period: period,
		Count:  count,
		Limit:  s.limits.LimitFor(user.Plan),
	}, nil
}
