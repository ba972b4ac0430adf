package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/service/intake"
)

type intakeService interface {
	Intake(ctx context.Context, in intake.IntakeInput) (*intake.Receipt, error)
}

// IntakeHandler serves the public submission endpoint.
type IntakeHandler struct {
	svc     intakeService
	maxBody int64
	log     *slog.Logger
}

// NewIntakeHandler creates an IntakeHandler. maxBody bounds the request
// body in bytes.
func NewIntakeHandler(svc intakeService, maxBody int64, logger *slog.Logger) *IntakeHandler {
	return &IntakeHandler{svc: svc, maxBody: maxBody, log: logger.With("handler", "intake")}
}

type intakeResponse struct {
	OK    bool   `json:"ok"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// Submit handles POST /v1/f/{formID}. Responses carry only a generic code.
func (h *IntakeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	formID, err := uuid.Parse(chi.URLParam(r, "formID"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, intakeResponse{Error: "not_found"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	payload, err := readPayload(r, h.maxBody)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, intakeResponse{Error: "validation_error"})
		return
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		origin = r.Header.Get("Referer")
	}

	receipt, err := h.svc.Intake(r.Context(), intake.IntakeInput{
		FormID:  formID,
		Payload: payload,
		Origin:  origin,
	})
	if err != nil {
		status, code := errorCode(err)
		if status >= 500 {
			h.log.ErrorContext(r.Context(), "intake failed",
				slog.String("form_id", formID.String()),
				slog.String("error", err.Error()),
			)
		}
		writeJSON(w, status, intakeResponse{Error: code})
		return
	}

	writeJSON(w, http.StatusAccepted, intakeResponse{OK: true, ID: receipt.SubmissionID.String()})
}

var errUnsupportedBody = errors.New("unsupported content type")

// readPayload decodes a JSON object or an HTML form body. Repeated form
// keys become lists; uploaded files are ignored.
func readPayload(r *http.Request, maxBody int64) (map[string]any, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = "application/json"
	}

	switch mediaType {
	case "application/json":
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			return nil, err
		}
		return payload, nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return formValues(r.PostForm), nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBody); err != nil {
			return nil, err
		}
		return formValues(r.MultipartForm.Value), nil
	default:
		return nil, errUnsupportedBody
	}
}

func formValues(values map[string][]string) map[string]any {
	out := make(map[string]any, len(values))
	for k, vs := range values {
		if len(vs) == 1 {
			out[k] = vs[0]
			continue
		}
		list := make([]any, len(vs))
		for i, v := range vs {
			list[i] = v
		}
		out[k] = list
	}
	return out
}
