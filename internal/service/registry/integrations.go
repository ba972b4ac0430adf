package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/domain"
)

// ConnectIntegration seals credentials and stores them for the form,
// enabling the channel. Reconnecting replaces earlier credentials.
func (s *Service) ConnectIntegration(ctx context.Context, input ConnectIntegrationInput) (IntegrationView, error) {
	if err := input.Validate(); err != nil {
		return IntegrationView{}, err
	}
	if _, err := s.ownedForm(ctx, input.FormID); err != nil {
		return IntegrationView{}, err
	}

	creds := input.Credentials
	sealed, err := s.box.Seal(&creds)
	if err != nil {
		return IntegrationView{}, fmt.Errorf("connect integration: %w", err)
	}

	ci, err := s.integrations.Connect(ctx, input.FormID, input.Kind, sealed)
	if err != nil {
		return IntegrationView{}, fmt.Errorf("connect integration: %w", err)
	}

	s.log.InfoContext(ctx, "integration connected",
		slog.String("form_id", input.FormID.String()),
		slog.String("kind", input.Kind.String()),
	)
	return redact(ci, &creds), nil
}

// SetIntegrationEnabled toggles a channel. Enabling a channel that has no
// stored credentials is a validation error.
func (s *Service) SetIntegrationEnabled(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind, enabled bool) (IntegrationView, error) {
	if !kind.IsIntegration() {
		return IntegrationView{}, domain.NewValidationError("kind", "unknown integration")
	}
	if _, err := s.ownedForm(ctx, formID); err != nil {
		return IntegrationView{}, err
	}

	if enabled {
		ci, err := s.integrations.Get(ctx, formID, kind)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return IntegrationView{}, fmt.Errorf("set integration enabled: %w", err)
		}
		if ci == nil || !ci.IsConnected() {
			return IntegrationView{}, domain.NewValidationError("kind", "integration is not connected")
		}
	}

	ci, err := s.integrations.SetEnabled(ctx, formID, kind, enabled)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return IntegrationView{}, domain.NewValidationError("kind", "integration is not connected")
		}
		return IntegrationView{}, fmt.Errorf("set integration enabled: %w", err)
	}

	s.log.InfoContext(ctx, "integration toggled",
		slog.String("form_id", formID.String()),
		slog.String("kind", kind.String()),
		slog.Bool("enabled", enabled),
	)
	return s.view(ci), nil
}

// DisconnectIntegration clears the channel's credentials and disables it
// in one write.
func (s *Service) DisconnectIntegration(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind) error {
	if !kind.IsIntegration() {
		return domain.NewValidationError("kind", "unknown integration")
	}
	if _, err := s.ownedForm(ctx, formID); err != nil {
		return err
	}
	if err := s.integrations.Disconnect(ctx, formID, kind); err != nil {
		return fmt.Errorf("disconnect integration: %w", err)
	}

	s.log.InfoContext(ctx, "integration disconnected",
		slog.String("form_id", formID.String()),
		slog.String("kind", kind.String()),
	)
	return nil
}

// ListIntegrations returns the form's integrations without secrets.
func (s *Service) ListIntegrations(ctx context.Context, formID uuid.UUID) ([]IntegrationView, error) {
	if _, err := s.ownedForm(ctx, formID); err != nil {
		return nil, err
	}
	list, err := s.integrations.ListByForm(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("list integrations: %w", err)
	}

	views := make([]IntegrationView, 0, len(list))
	for i := range list {
		views = append(views, s.view(&list[i]))
	}
	return views, nil
}

// view opens credentials only to extract the non-secret detail label.
func (s *Service) view(ci *domain.ChannelIntegration) IntegrationView {
	creds, err := s.box.Open(ci.SealedCredentials)
	if err != nil {
		creds = nil
	}
	return redact(ci, creds)
}
