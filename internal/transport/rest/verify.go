package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/akinloluwami/formdrop/internal/domain"
)

type tokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Recipient, error)
}

// VerifyHandler serves the link recipients follow from their
// verification email.
type VerifyHandler struct {
	svc tokenVerifier
	log *slog.Logger
}

// NewVerifyHandler creates a VerifyHandler.
func NewVerifyHandler(svc tokenVerifier, logger *slog.Logger) *VerifyHandler {
	return &VerifyHandler{svc: svc, log: logger.With("handler", "verify")}
}

type verifyResponse struct {
	Verified bool   `json:"verified"`
	Email    string `json:"email"`
}

// Verify handles GET /v1/verify?token=.
func (h *VerifyHandler) Verify(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Verify(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		status, code := errorCode(err)
		if status >= 500 {
			h.log.ErrorContext(r.Context(), "verify failed", slog.String("error", err.Error()))
		}
		writeError(w, status, code)
		return
	}
	writeJSON(w, http.StatusOK, verifyResponse{Verified: true, Email: rec.Email})
}
