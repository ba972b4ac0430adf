package registry

import (
	"time"

	"github.com/akinloluwami/formdrop/internal/domain"
)

// IntegrationView is an integration with its secrets removed. Detail holds
// a non-secret label such as the Slack channel or the spreadsheet ID.
type IntegrationView struct {
	Kind        domain.ChannelKind
	Enabled     bool
	Connected   bool
	Detail      string
	ConnectedAt *time.Time
	UpdatedAt   time.Time
}

func redact(ci *domain.ChannelIntegration, creds *domain.Credentials) IntegrationView {
	v := IntegrationView{
		Kind:        ci.Kind,
		Enabled:     ci.Enabled,
		Connected:   ci.IsConnected(),
		ConnectedAt: ci.ConnectedAt,
		UpdatedAt:   ci.UpdatedAt,
	}
	if creds == nil {
		return v
	}
	switch ci.Kind {
	case domain.ChannelSlack, domain.ChannelDiscord:
		v.Detail = creds.ChannelName
	case domain.ChannelSheets:
		v.Detail = creds.SpreadsheetID
	case domain.ChannelAirtable:
		v.Detail = creds.BaseID + "/" + creds.TableName
	}
	return v
}
