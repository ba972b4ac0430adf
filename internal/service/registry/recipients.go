package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/domain"
)

// AddRecipient adds an unverified recipient to a form. The address must be
// verified before it receives notifications.
func (s *Service) AddRecipient(ctx context.Context, input AddRecipientInput) (*domain.Recipient, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.ownedForm(ctx, input.FormID); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	rec, err := s.recipients.Create(ctx, input.FormID, email)
	if err != nil {
		return nil, fmt.Errorf("add recipient: %w", err)
	}

	s.log.InfoContext(ctx, "recipient added",
		slog.String("form_id", input.FormID.String()),
		slog.String("recipient_id", rec.ID.String()),
	)
	return rec, nil
}

// RemoveRecipient soft-deletes a recipient.
func (s *Service) RemoveRecipient(ctx context.Context, recipientID uuid.UUID) error {
	if _, err := s.ownedRecipient(ctx, recipientID); err != nil {
		return err
	}
	if err := s.recipients.SoftDelete(ctx, recipientID); err != nil {
		return fmt.Errorf("remove recipient: %w", err)
	}

	s.log.InfoContext(ctx, "recipient removed", slog.String("recipient_id", recipientID.String()))
	return nil
}

// SetRecipientEnabled toggles whether a recipient receives notifications.
func (s *Service) SetRecipientEnabled(ctx context.Context, recipientID uuid.UUID, enabled bool) (*domain.Recipient, error) {
	if _, err := s.ownedRecipient(ctx, recipientID); err != nil {
		return nil, err
	}
	rec, err := s.recipients.SetEnabled(ctx, recipientID, enabled)
	if err != nil {
		return nil, fmt.Errorf("set recipient enabled: %w", err)
	}
	return rec, nil
}

// ListRecipients returns the live recipients of a form.
func (s *Service) ListRecipients(ctx context.Context, formID uuid.UUID) ([]domain.Recipient, error) {
	if _, err := s.ownedForm(ctx, formID); err != nil {
		return nil, err
	}
	recs, err := s.recipients.ListByForm(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}
	return recs, nil
}

// GetRecipient returns a recipient whose form the caller owns.
func (s *Service) GetRecipient(ctx context.Context, recipientID uuid.UUID) (*domain.Recipient, error) {
	return s.ownedRecipient(ctx, recipientID)
}
