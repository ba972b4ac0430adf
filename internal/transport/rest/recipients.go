package rest

import (
	"net/http"

	"github.com/akinloluwami/formdrop/internal/service/registry"
)

type addRecipientRequest struct {
	Email string `json:"email" validate:"required,email,max=320"`
}

// AddRecipient handles POST /v1/forms/{formID}/recipients. The recipient
// starts unverified.
func (h *OwnerHandler) AddRecipient(w http.ResponseWriter, r *http.Request) {
	formID, err := pathUUID(r, "formID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req addRecipientRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.registry.AddRecipient(r.Context(), registry.AddRecipientInput{FormID: formID, Email: req.Email})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRecipientResponse(rec, h.now()))
}

// ListRecipients handles GET /v1/forms/{formID}/recipients.
func (h *OwnerHandler) ListRecipients(w http.ResponseWriter, r *http.Request) {
	formID, err := pathUUID(r, "formID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	recs, err := h.registry.ListRecipients(r.Context(), formID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	now := h.now()
	out := make([]recipientResponse, 0, len(recs))
	for i := range recs {
		out = append(out, toRecipientResponse(&recs[i], now))
	}
	writeJSON(w, http.StatusOK, out)
}

// SetRecipientEnabled handles PATCH /v1/recipients/{recipientID}.
func (h *OwnerHandler) SetRecipientEnabled(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "recipientID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req toggleRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.registry.SetRecipientEnabled(r.Context(), id, *req.Enabled)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipientResponse(rec, h.now()))
}

// RemoveRecipient handles DELETE /v1/recipients/{recipientID}.
func (h *OwnerHandler) RemoveRecipient(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "recipientID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.registry.RemoveRecipient(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SendVerification handles POST /v1/recipients/{recipientID}/verification.
func (h *OwnerHandler) SendVerification(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "recipientID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.verifier.SendVerification(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]bool{"sent": true})
}
