package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/domain"
)

// ResolveTargets returns every eligible dispatch target of a form:
//   - one email target per enabled, verified recipient when the form's
//     email channel is on;
//   - at most one target per enabled integration whose credentials are
//     complete for its kind.
//
// Email targets come first, then integrations in domain.IntegrationKinds
// order. Integrations whose credentials cannot be opened are skipped and
// logged.
func (s *Service) ResolveTargets(ctx context.Context, formID uuid.UUID) ([]domain.DispatchTarget, error) {
	form, err := s.forms.GetByID(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("resolve targets: load form: %w", err)
	}

	var targets []domain.DispatchTarget

	if form.EmailEnabled {
		recipients, err := s.recipients.ListDeliverable(ctx, formID)
		if err != nil {
			return nil, fmt.Errorf("resolve targets: list recipients: %w", err)
		}
		for i := range recipients {
			rec := &recipients[i]
			if !rec.CanReceive() {
				continue
			}
			targets = append(targets, domain.DispatchTarget{
				Kind:        domain.ChannelEmail,
				RecipientID: rec.ID,
				Email:       rec.Email,
			})
		}
	}

	active, err := s.integrations.ListActive(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("resolve targets: list integrations: %w", err)
	}

	byKind := make(map[domain.ChannelKind]*domain.ChannelIntegration, len(active))
	for i := range active {
		byKind[active[i].Kind] = &active[i]
	}

	for _, kind := range domain.IntegrationKinds {
		ci, ok := byKind[kind]
		if !ok || !ci.Enabled || !ci.IsConnected() {
			continue
		}

		creds, err := s.box.Open(ci.SealedCredentials)
		if err != nil {
			s.log.WarnContext(ctx, "cannot open integration credentials",
				slog.String("form_id", formID.String()),
				slog.String("kind", kind.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if !creds.Complete(kind) {
			continue
		}

		targets = append(targets, domain.DispatchTarget{Kind: kind, Credentials: creds})
	}

	return targets, nil
}
