package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/domain"
	"github.com/akinloluwami/formdrop/internal/service/registry"
)

// connectRequest carries the credentials of one integration. Which fields
// are required depends on the kind and is checked by the registry.
type connectRequest struct {
	WebhookURL    string `json:"webhook_url"    validate:"omitempty,url,max=2048"`
	ChannelName   string `json:"channel_name"   validate:"max=200"`
	AccessToken   string `json:"access_token"   validate:"max=4096"`
	RefreshToken  string `json:"refresh_token"  validate:"max=4096"`
	SpreadsheetID string `json:"spreadsheet_id" validate:"max=200"`
	SheetName     string `json:"sheet_name"     validate:"max=200"`
	APIKey        string `json:"api_key"        validate:"max=512"`
	BaseID        string `json:"base_id"        validate:"max=200"`
	TableName     string `json:"table_name"     validate:"max=200"`
}

func formAndKind(r *http.Request) (uuid.UUID, domain.ChannelKind, error) {
	formID, err := pathUUID(r, "formID")
	if err != nil {
		return uuid.Nil, "", err
	}
	kind := domain.ChannelKind(chi.URLParam(r, "kind"))
	if !kind.IsIntegration() {
		return uuid.Nil, "", domain.NewValidationError("kind", "unknown integration")
	}
	return formID, kind, nil
}

// ListIntegrations handles GET /v1/forms/{formID}/integrations.
func (h *OwnerHandler) ListIntegrations(w http.ResponseWriter, r *http.Request) {
	formID, err := pathUUID(r, "formID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	views, err := h.registry.ListIntegrations(r.Context(), formID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]integrationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toIntegrationResponse(v))
	}
	writeJSON(w, http.StatusOK, out)
}

// ConnectIntegration handles PUT /v1/forms/{formID}/integrations/{kind}.
// Credentials are never echoed back.
func (h *OwnerHandler) ConnectIntegration(w http.ResponseWriter, r *http.Request) {
	formID, kind, err := formAndKind(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req connectRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := h.registry.ConnectIntegration(r.Context(), registry.ConnectIntegrationInput{
		FormID: formID,
		Kind:   kind,
		Credentials: domain.Credentials{
			WebhookURL:    req.WebhookURL,
			ChannelName:   req.ChannelName,
			AccessToken:   req.AccessToken,
			RefreshToken:  req.RefreshToken,
			SpreadsheetID: req.SpreadsheetID,
			SheetName:     req.SheetName,
			APIKey:        req.APIKey,
			BaseID:        req.BaseID,
			TableName:     req.TableName,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toIntegrationResponse(view))
}

// SetIntegrationEnabled handles PATCH /v1/forms/{formID}/integrations/{kind}.
func (h *OwnerHandler) SetIntegrationEnabled(w http.ResponseWriter, r *http.Request) {
	formID, kind, err := formAndKind(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req toggleRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := h.registry.SetIntegrationEnabled(r.Context(), formID, kind, *req.Enabled)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toIntegrationResponse(view))
}

// DisconnectIntegration handles DELETE /v1/forms/{formID}/integrations/{kind}.
func (h *OwnerHandler) DisconnectIntegration(w http.ResponseWriter, r *http.Request) {
	formID, kind, err := formAndKind(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.registry.DisconnectIntegration(r.Context(), formID, kind); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
