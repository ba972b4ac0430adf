package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ChannelKind identifies a notification delivery mechanism.
type ChannelKind string

const (
	ChannelEmail    ChannelKind = "email"
	ChannelSlack    ChannelKind = "slack"
	ChannelDiscord  ChannelKind = "discord"
	ChannelSheets   ChannelKind = "google_sheets"
	ChannelAirtable ChannelKind = "airtable"
)

func (k ChannelKind) String() string { return string(k) }

func (k ChannelKind) IsValid() bool {
	switch k {
	case ChannelEmail, ChannelSlack, ChannelDiscord, ChannelSheets, ChannelAirtable:
		return true
	}
	return false
}

// IsIntegration reports whether the channel is configured through a
// ChannelIntegration row (everything except email).
func (k ChannelKind) IsIntegration() bool {
	return k.IsValid() && k != ChannelEmail
}

// IntegrationKinds lists the channels backed by stored credentials.
var IntegrationKinds = []ChannelKind{ChannelSlack, ChannelDiscord, ChannelSheets, ChannelAirtable}

// Credentials holds the secrets of one integration. Only the fields that
// belong to the integration's kind are populated. The struct is sealed
// before it reaches storage.
type Credentials struct {
	WebhookURL    string     `json:"webhook_url,omitempty"`
	ChannelName   string     `json:"channel_name,omitempty"`
	AccessToken   string     `json:"access_token,omitempty"`
	RefreshToken  string     `json:"refresh_token,omitempty"`
	TokenExpiry   *time.Time `json:"token_expiry,omitempty"`
	SpreadsheetID string     `json:"spreadsheet_id,omitempty"`
	SheetName     string     `json:"sheet_name,omitempty"`
	APIKey        string     `json:"api_key,omitempty"`
	BaseID        string     `json:"base_id,omitempty"`
	TableName     string     `json:"table_name,omitempty"`
}

// Complete reports whether every field required to deliver through kind is
// present.
func (c *Credentials) Complete(kind ChannelKind) bool {
	if c == nil {
		return false
	}
	switch kind {
	case ChannelSlack, ChannelDiscord:
		return notBlank(c.WebhookURL)
	case ChannelSheets:
		return (notBlank(c.AccessToken) || notBlank(c.RefreshToken)) && notBlank(c.SpreadsheetID)
	case ChannelAirtable:
		return notBlank(c.APIKey) && notBlank(c.BaseID) && notBlank(c.TableName)
	}
	return false
}

func notBlank(s string) bool { return strings.TrimSpace(s) != "" }

// ChannelIntegration is a form's connection to a third-party channel.
// SealedCredentials is nil while disconnected; storage rejects
// Enabled=true without credentials.
type ChannelIntegration struct {
	ID                uuid.UUID
	FormID            uuid.UUID
	Kind              ChannelKind
	Enabled           bool
	SealedCredentials []byte
	ConnectedAt       *time.Time
	UpdatedAt         time.Time
}

// IsConnected reports whether credentials are stored.
func (i *ChannelIntegration) IsConnected() bool {
	return len(i.SealedCredentials) > 0
}

// DispatchTarget is a resolved, eligible destination for one submission.
// Email targets carry the recipient; integration targets carry opened
// credentials.
type DispatchTarget struct {
	Kind        ChannelKind
	RecipientID uuid.UUID
	Email       string
	Credentials *Credentials
}

// Key identifies the target within one submission's fan-out.
func (t DispatchTarget) Key() string {
	if t.Kind == ChannelEmail {
		return string(ChannelEmail) + ":" + t.RecipientID.String()
	}
	return string(t.Kind)
}

// DeliveryStatus is the result of one delivery attempt.
type DeliveryStatus string

const (
	DeliverySuccess DeliveryStatus = "success"
	DeliveryFailure DeliveryStatus = "failure"
	DeliverySkipped DeliveryStatus = "skipped"
)

func (s DeliveryStatus) String() string { return string(s) }

// Delivery records the outcome of delivering a submission to one target.
type Delivery struct {
	ID           uuid.UUID
	SubmissionID uuid.UUID
	Channel      ChannelKind
	TargetKey    string
	Status       DeliveryStatus
	Error        *string
	Duration     time.Duration
	AttemptedAt  time.Time
}
