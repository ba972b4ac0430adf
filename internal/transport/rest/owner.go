package rest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/domain"
	"github.com/akinloluwami/formdrop/internal/service/registry"
	"github.com/akinloluwami/formdrop/internal/service/submission"
)

type registryService interface {
	CreateForm(ctx context.Context, input registry.CreateFormInput) (*domain.Form, error)
	GetForm(ctx context.Context, formID uuid.UUID) (*domain.Form, error)
	ListForms(ctx context.Context) ([]domain.Form, error)
	SetEmailEnabled(ctx context.Context, formID uuid.UUID, enabled bool) (*domain.Form, error)
	SetAllowedOrigins(ctx context.Context, formID uuid.UUID, origins []string) (*domain.Form, error)
	DeleteForm(ctx context.Context, formID uuid.UUID) error

	AddRecipient(ctx context.Context, input registry.AddRecipientInput) (*domain.Recipient, error)
	RemoveRecipient(ctx context.Context, recipientID uuid.UUID) error
	SetRecipientEnabled(ctx context.Context, recipientID uuid.UUID, enabled bool) (*domain.Recipient, error)
	ListRecipients(ctx context.Context, formID uuid.UUID) ([]domain.Recipient, error)

	ConnectIntegration(ctx context.Context, input registry.ConnectIntegrationInput) (registry.IntegrationView, error)
	SetIntegrationEnabled(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind, enabled bool) (registry.IntegrationView, error)
	DisconnectIntegration(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind) error
	ListIntegrations(ctx context.Context, formID uuid.UUID) ([]registry.IntegrationView, error)
}

type verificationSender interface {
	SendVerification(ctx context.Context, recipientID uuid.UUID) error
}

type submissionService interface {
	List(ctx context.Context, in submission.ListInput) ([]domain.Submission, error)
	Get(ctx context.Context, formID, id uuid.UUID) (*submission.Detail, error)
	Delete(ctx context.Context, formID, id uuid.UUID) error
}

type usageService interface {
	Usage(ctx context.Context, userID uuid.UUID, period string) (domain.Usage, error)
}

// OwnerHandler serves the authenticated form owner API.
type OwnerHandler struct {
	registry    registryService
	verifier    verificationSender
	submissions submissionService
	usage       usageService
	log         *slog.Logger
	now         func() time.Time
}

// NewOwnerHandler creates an OwnerHandler.
func NewOwnerHandler(
	reg registryService,
	verifier verificationSender,
	submissions submissionService,
	usage usageService,
	logger *slog.Logger,
) *OwnerHandler {
	return &OwnerHandler{
		registry:    reg,
		verifier:    verifier,
		submissions: submissions,
		usage:       usage,
		log:         logger.With("handler", "owner"),
		now:         time.Now,
	}
}

type formResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	EmailEnabled   bool      `json:"email_enabled"`
	AllowedOrigins []string  `json:"allowed_origins"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toFormResponse(f *domain.Form) formResponse {
	origins := f.AllowedOrigins
	if origins == nil {
		origins = []string{}
	}
	return formResponse{
		ID:             f.ID.String(),
		Name:           f.Name,
		EmailEnabled:   f.EmailEnabled,
		AllowedOrigins: origins,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

type recipientResponse struct {
	ID         string     `json:"id"`
	FormID     string     `json:"form_id"`
	Email      string     `json:"email"`
	Enabled    bool       `json:"enabled"`
	State      string     `json:"verification"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toRecipientResponse(r *domain.Recipient, now time.Time) recipientResponse {
	return recipientResponse{
		ID:         r.ID.String(),
		FormID:     r.FormID.String(),
		Email:      r.Email,
		Enabled:    r.Enabled,
		State:      r.State(now).String(),
		VerifiedAt: r.VerifiedAt,
		CreatedAt:  r.CreatedAt,
	}
}

type integrationResponse struct {
	Kind        string     `json:"kind"`
	Enabled     bool       `json:"enabled"`
	Connected   bool       `json:"connected"`
	Detail      string     `json:"detail,omitempty"`
	ConnectedAt *time.Time `json:"connected_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toIntegrationResponse(v registry.IntegrationView) integrationResponse {
	return integrationResponse{
		Kind:        v.Kind.String(),
		Enabled:     v.Enabled,
		Connected:   v.Connected,
		Detail:      v.Detail,
		ConnectedAt: v.ConnectedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

type submissionResponse struct {
	ID         string             `json:"id"`
	FormID     string             `json:"form_id"`
	Payload    map[string]any     `json:"payload"`
	CreatedAt  time.Time          `json:"created_at"`
	Deliveries []deliveryResponse `json:"deliveries,omitempty"`
}

type deliveryResponse struct {
	Channel     string    `json:"channel"`
	Target      string    `json:"target"`
	Status      string    `json:"status"`
	Error       *string   `json:"error,omitempty"`
	DurationMS  int64     `json:"duration_ms"`
	AttemptedAt time.Time `json:"attempted_at"`
}

func toSubmissionResponse(s *domain.Submission) submissionResponse {
	return submissionResponse{
		ID:        s.ID.String(),
		FormID:    s.FormID.String(),
		Payload:   s.Payload,
		CreatedAt: s.CreatedAt,
	}
}

func toDeliveryResponse(d domain.Delivery) deliveryResponse {
	return deliveryResponse{
		Channel:     d.Channel.String(),
		Target:      d.TargetKey,
		Status:      d.Status.String(),
		Error:       d.Error,
		DurationMS:  d.Duration.Milliseconds(),
		AttemptedAt: d.AttemptedAt,
	}
}

type usageResponse struct {
	Period    string `json:"period"`
	Count     int    `json:"count"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
}
