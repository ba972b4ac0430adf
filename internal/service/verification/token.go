package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/auth"
	"github.com/akinloluwami/formdrop/internal/domain"
)

// IssueToken creates a fresh token for an unverified recipient and returns
// the raw value. Only its hash is stored; any earlier pending token stops
// working. Returns ErrConflict when the recipient is already verified.
func (s *Service) IssueToken(ctx context.Context, recipientID uuid.UUID) (string, error) {
	rec, err := s.recipients.GetByID(ctx, recipientID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	if rec.IsVerified() {
		return "", fmt.Errorf("issue token: recipient already verified: %w", domain.ErrConflict)
	}

	raw, hash, err := s.newToken()
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	expiresAt := s.now().Add(s.cfg.TokenTTL)
	if _, err := s.recipients.SetToken(ctx, recipientID, hash, expiresAt); err != nil {
		return "", fmt.Errorf("issue token: store: %w", err)
	}

	s.log.InfoContext(ctx, "verification token issued",
		slog.String("recipient_id", recipientID.String()),
		slog.Time("expires_at", expiresAt),
	)
	return raw, nil
}

// Verify consumes token and marks its recipient verified. An unknown,
// already used or expired token returns ErrInvalidOrExpiredToken; an
// expired one is cleared so the recipient is Unverified again.
func (s *Service) Verify(ctx context.Context, token string) (*domain.Recipient, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrInvalidOrExpiredToken
	}

	hash := auth.HashToken(token)
	now := s.now()

	rec, err := s.recipients.ConsumeToken(ctx, hash, now)
	if err == nil {
		s.log.InfoContext(ctx, "recipient verified",
			slog.String("recipient_id", rec.ID.String()),
			slog.String("form_id", rec.FormID.String()),
		)
		return rec, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("verify: %w", err)
	}

	cleared, err := s.recipients.ClearExpiredToken(ctx, hash, now)
	if err != nil {
		s.log.WarnContext(ctx, "clear expired token failed", slog.String("error", err.Error()))
	} else if cleared {
		s.log.InfoContext(ctx, "expired verification token cleared")
	}
	return nil, domain.ErrInvalidOrExpiredToken
}
