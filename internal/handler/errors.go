package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mpatel-dev/wanderplan/backend/internal/domain"
)

// ErrorResponse is the JSON envelope for every failure the API returns.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the standard error envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeDomainError maps a service error onto the HTTP surface.
// Sentinel errors map to specific statuses; anything unrecognized is logged
// and surfaced as a generic 500 so internals never leak to the caller.
func writeDomainError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", "you do not own this resource")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", unwrapMessage(err))
	case errors.Is(err, domain.ErrGeneration):
		writeError(w, http.StatusBadGateway, "generation_failed", "itinerary generation failed after retry")
	case errors.Is(err, domain.ErrStorage):
		log.Error("storage failure", "error", err)
		writeError(w, http.StatusInternalServerError, "storage_error", "storage is temporarily unavailable")
	default:
		log.Error("unhandled error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// requestBody returns a validation_error response for a bad request rejected
// before reaching the service layer (e.g. missing or malformed body).
func requestBody(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnprocessableEntity, "validation_error", message)
}

// unwrapMessage extracts the human-readable tail from a wrapped sentinel error.
// e.g. "service.TripService.Create: validation error: destination is missing
// or invalid" → "destination is missing or invalid".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []string{
		domain.ErrValidation.Error(),
		domain.ErrNotFound.Error(),
	} {
		if idx := strings.Index(msg, sentinel+": "); idx >= 0 {
			return msg[idx+len(sentinel)+2:]
		}
	}
	// Strip "service.X.Y: " style prefixes when no detail follows the sentinel.
	if idx := strings.LastIndex(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}
