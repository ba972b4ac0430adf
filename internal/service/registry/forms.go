package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/domain"
	"github.com/akinloluwami/formdrop/pkg/ctxutil"
)

// CreateForm creates a form owned by the caller.
func (s *Service) CreateForm(ctx context.Context, input CreateFormInput) (*domain.Form, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	form, err := s.forms.Create(ctx, &domain.Form{
		UserID:         ownerID,
		Name:           strings.TrimSpace(input.Name),
		EmailEnabled:   input.EmailEnabled,
		AllowedOrigins: normalizeOrigins(input.AllowedOrigins),
	})
	if err != nil {
		return nil, fmt.Errorf("create form: %w", err)
	}

	s.log.InfoContext(ctx, "form created",
		slog.String("user_id", ownerID.String()),
		slog.String("form_id", form.ID.String()),
	)
	return form, nil
}

// GetForm returns a form owned by the caller.
func (s *Service) GetForm(ctx context.Context, formID uuid.UUID) (*domain.Form, error) {
	return s.ownedForm(ctx, formID)
}

// ListForms returns the caller's forms.
func (s *Service) ListForms(ctx context.Context) ([]domain.Form, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	forms, err := s.forms.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	return forms, nil
}

// SetEmailEnabled toggles the email channel of a form.
func (s *Service) SetEmailEnabled(ctx context.Context, formID uuid.UUID, enabled bool) (*domain.Form, error) {
	if _, err := s.ownedForm(ctx, formID); err != nil {
		return nil, err
	}
	form, err := s.forms.SetEmailEnabled(ctx, formID, enabled)
	if err != nil {
		return nil, fmt.Errorf("set email enabled: %w", err)
	}
	return form, nil
}

// SetAllowedOrigins replaces the form's origin allow-list. An empty list
// accepts submissions from any origin.
func (s *Service) SetAllowedOrigins(ctx context.Context, formID uuid.UUID, origins []string) (*domain.Form, error) {
	if errs := validateOrigins(origins); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	if _, err := s.ownedForm(ctx, formID); err != nil {
		return nil, err
	}
	form, err := s.forms.SetAllowedOrigins(ctx, formID, normalizeOrigins(origins))
	if err != nil {
		return nil, fmt.Errorf("set allowed origins: %w", err)
	}
	return form, nil
}

// DeleteForm soft-deletes a form. Its submissions stop being accepted.
func (s *Service) DeleteForm(ctx context.Context, formID uuid.UUID) error {
	if _, err := s.ownedForm(ctx, formID); err != nil {
		return err
	}
	if err := s.forms.SoftDelete(ctx, formID); err != nil {
		return fmt.Errorf("delete form: %w", err)
	}
	s.log.InfoContext(ctx, "form deleted", slog.String("form_id", formID.String()))
	return nil
}

// normalizeOrigins reduces entries to lowercase hosts and drops duplicates.
func normalizeOrigins(origins []string) []string {
	seen := make(map[string]bool, len(origins))
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		h := domain.OriginHost(o)
		if h == "" || seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	return out
}
