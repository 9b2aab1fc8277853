package handler

import (
	"net/http"

	"github.com/mpatel-dev/wanderplan/backend/internal/middleware"
)

// GetAdvice handles POST /v1/advice.
// Builds budgeting advice from the caller's recent expenses. The advice
// service degrades to fixed text when the AI provider is unavailable, so
// this endpoint only errors on storage failures.
func (s *Server) GetAdvice(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	advice, err := s.advice.ForOwner(r.Context(), ownerID)
	if err != nil {
		writeDomainError(w, s.log, err)
		return
	}

	writeJSON(w, http.StatusOK, advice)
}
