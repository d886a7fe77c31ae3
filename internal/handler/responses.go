package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
)

// SuccessResponse acknowledges an item-level operation
type SuccessResponse struct {
	Message string `json:"message"`
	ItemID  int64  `json:"item_id"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode first so an encoding failure can still become a 500.
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceError converts domain errors into a status code and user-facing message.
// Order matters: workflow errors wrap the cause that produced them.
func mapServiceError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrPurchaseNotAccepted):
		return http.StatusServiceUnavailable, ErrMsgNotAccepted
	case errors.Is(err, domain.ErrFulfillment):
		return http.StatusInternalServerError, ErrMsgFulfillment
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrMsgUnauthenticated
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrItemUnavailable):
		return http.StatusNotFound, ErrMsgItemUnavailable
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFound
	case errors.Is(err, domain.ErrAlreadyOwned):
		return http.StatusBadRequest, ErrMsgAlreadyOwned
	case errors.Is(err, domain.ErrNotOwned):
		return http.StatusBadRequest, ErrMsgNotOwned
	case errors.Is(err, domain.ErrInsufficientPoints):
		return http.StatusBadRequest, ErrMsgInsufficientPoints
	case errors.Is(err, domain.ErrPointsDeduction):
		return http.StatusBadRequest, ErrMsgPointsDeduction
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError writes the mapped error response
func respondServiceError(w http.ResponseWriter, err error) {
	status, msg := mapServiceError(err)
	respondError(w, status, msg)
}
