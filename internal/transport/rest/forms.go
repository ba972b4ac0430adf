package rest

import (
	"net/http"

	"github.com/akinloluwami/formdrop/internal/service/quota"
	"github.com/akinloluwami/formdrop/internal/service/registry"
	"github.com/akinloluwami/formdrop/pkg/ctxutil"
)

type createFormRequest struct {
	Name           string   `json:"name"            validate:"required,max=200"`
	EmailEnabled   *bool    `json:"email_enabled"`
	AllowedOrigins []string `json:"allowed_origins" validate:"max=50,dive,required,max=253"`
}

type toggleRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type originsRequest struct {
	AllowedOrigins []string `json:"allowed_origins" validate:"max=50,dive,required,max=253"`
}

// CreateForm handles POST /v1/forms.
func (h *OwnerHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	var req createFormRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	emailEnabled := true
	if req.EmailEnabled != nil {
		emailEnabled = *req.EmailEnabled
	}

	form, err := h.registry.CreateForm(r.Context(), registry.CreateFormInput{
		Name:           req.Name,
		EmailEnabled:   emailEnabled,
		AllowedOrigins: req.AllowedOrigins,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFormResponse(form))
}

// ListForms handles GET /v1/forms.
func (h *OwnerHandler) ListForms(w http.ResponseWriter, r *http.Request) {
	forms, err := h.registry.ListForms(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]formResponse, 0, len(forms))
	for i := range forms {
		out = append(out, toFormResponse(&forms[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetForm handles GET /v1/forms/{formID}.
func (h *OwnerHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	formID, err := pathUUID(r, "formID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	form, err := h.registry.GetForm(r.Context(), formID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFormResponse(form))
}

// DeleteForm handles DELETE /v1/forms/{formID}.
func (h *OwnerHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	formID, err := pathUUID(r, "formID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.registry.DeleteForm(r.Context(), formID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetEmailEnabled handles PUT /v1/forms/{formID}/email.
func (h *OwnerHandler) SetEmailEnabled(w http.ResponseWriter, r *http.Request) {
	formID, err := pathUUID(r, "formID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req toggleRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	form, err := h.registry.SetEmailEnabled(r.Context(), formID, *req.Enabled)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFormResponse(form))
}

// SetAllowedOrigins handles PUT /v1/forms/{formID}/origins.
func (h *OwnerHandler) SetAllowedOrigins(w http.ResponseWriter, r *http.Request) {
	formID, err := pathUUID(r, "formID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req originsRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	form, err := h.registry.SetAllowedOrigins(r.Context(), formID, req.AllowedOrigins)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFormResponse(form))
}

// Usage handles GET /v1/usage for the current month.
func (h *OwnerHandler) Usage(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.usage.Usage(r.Context(), ownerID, quota.PeriodKey(h.now()))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, usageResponse{
		Period:    u.Period,
		Count:     u.Count,
		Limit:     u.Limit,
		Remaining: u.Remaining(),
	})
}
