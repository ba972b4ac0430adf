package rest

import (
	"net/http"

	"github.com/akinloluwami/formdrop/internal/service/submission"
)

// ListSubmissions handles GET /v1/forms/{formID}/submissions?limit=&offset=.
func (h *OwnerHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	formID, err := pathUUID(r, "formID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	subs, err := h.submissions.List(r.Context(), submission.ListInput{FormID: formID, Limit: limit, Offset: offset})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]submissionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, toSubmissionResponse(&subs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetSubmission handles GET /v1/forms/{formID}/submissions/{submissionID}.
func (h *OwnerHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	formID, err := pathUUID(r, "formID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := pathUUID(r, "submissionID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	detail, err := h.submissions.Get(r.Context(), formID, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := toSubmissionResponse(detail.Submission)
	resp.Deliveries = make([]deliveryResponse, 0, len(detail.Deliveries))
	for _, d := range detail.Deliveries {
		resp.Deliveries = append(resp.Deliveries, toDeliveryResponse(d))
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteSubmission handles DELETE /v1/forms/{formID}/submissions/{submissionID}.
// The monthly usage count is not refunded.
func (h *OwnerHandler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	formID, err := pathUUID(r, "formID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := pathUUID(r, "submissionID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.submissions.Delete(r.Context(), formID, id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

