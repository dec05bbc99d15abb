package leads

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nobug-il/leadgen/pkg/logging"
)

// Handler exposes the submission service over HTTP
type Handler struct {
	svc    *Service
	logger *logging.Logger
}

// NewHandler creates a new submission handler
func NewHandler(svc *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// errorBody is the JSON error envelope shared by both endpoint adapters.
type errorBody struct {
	Error string `json:"error"`
}

// ErrorResponse maps a submission error to the status code and message the
// form contract promises. Provider detail never reaches the caller.
func ErrorResponse(err error) (int, string) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		switch verr.Kind {
		case KindMissingField:
			return http.StatusBadRequest, "Missing required fields"
		case KindInvalidPhone:
			return http.StatusBadRequest, "Invalid phone number format"
		case KindInvalidEmail:
			return http.StatusBadRequest, "Invalid email address"
		case KindMalformedRequest:
			return http.StatusBadRequest, "Invalid request body"
		}
	}
	return http.StatusInternalServerError, "Failed to send notification"
}

// SubmitForm handles the landing page form endpoint. The method guard lives
// here rather than in the router so the serverless adapter shares the exact
// same contract.
func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		// Preflight: CORS headers are set by middleware, body stays empty.
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "Method not allowed"})
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		status, msg := ErrorResponse(NewValidationError(KindMalformedRequest, "body is not valid JSON"))
		writeJSON(w, status, errorBody{Error: msg})
		return
	}

	result, err := h.svc.Submit(r.Context(), req)
	if err != nil {
		status, msg := ErrorResponse(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("dispatch failed", "error", err)
		}
		writeJSON(w, status, errorBody{Error: msg})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HealthCheck reports service liveness
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
