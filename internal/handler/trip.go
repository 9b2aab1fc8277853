package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mpatel-dev/wanderplan/backend/internal/domain"
	"github.com/mpatel-dev/wanderplan/backend/internal/middleware"
)

// tripResponse is the wire shape of a trip. Dates are rendered as calendar
// date strings; the embedded day/activity structure is passed through as-is.
type tripResponse struct {
	ID          uuid.UUID    `json:"id"`
	Destination string       `json:"destination"`
	StartDate   string       `json:"startDate"`
	EndDate     string       `json:"endDate"`
	Budget      *float64     `json:"budget,omitempty"`
	Travelers   *int         `json:"travelers,omitempty"`
	Style       string       `json:"style,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	Overview    string       `json:"overview,omitempty"`
	Days        []domain.Day `json:"days"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// tripToResponse converts a domain.Trip into its wire shape.
func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID,
		Destination: t.Destination,
		StartDate:   t.StartDate.Format(domain.DateLayout),
		EndDate:     t.EndDate.Format(domain.DateLayout),
		Budget:      t.Budget,
		Travelers:   t.Travelers,
		Style:       t.Style,
		Notes:       t.Notes,
		Overview:    t.Overview,
		Days:        t.Days,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// tripListResponse wraps a trips page with its pagination echo.
type tripListResponse struct {
	Data       []tripResponse `json:"data"`
	Pagination pagination     `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// CreateTrip handles POST /v1/trips.
// Generation runs synchronously: the response carries the full itinerary
// (AI-generated or fallback) or an error when disableFallback was set and
// generation was exhausted.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	var in domain.TripInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		requestBody(w, "request body must be valid JSON")
		return
	}

	created, err := s.trips.Create(r.Context(), ownerID, in)
	if err != nil {
		writeDomainError(w, s.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /v1/trips.
// Returns the caller's trips newest first. Supports ?page= and ?limit=
// query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	trips, total, err := s.trips.ListByOwner(r.Context(), ownerID, params)
	if err != nil {
		writeDomainError(w, s.log, err)
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, tripListResponse{
		Data: data,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetTrip handles GET /v1/trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "trip not found")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), ownerID, id)
	if err != nil {
		writeDomainError(w, s.log, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// activityPatchRequest is the body of an activity edit. Pointer fields
// distinguish "omitted" (keep the stored value) from "set to empty".
type activityPatchRequest struct {
	Title    string   `json:"title"`
	Time     *string  `json:"time,omitempty"`
	Location *string  `json:"location,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
	Cost     *float64 `json:"cost,omitempty"`
}

// UpdateActivity handles
// PUT /v1/trips/{tripID}/days/{dayIndex}/activities/{activityIndex}.
// The indices are positional; there are no per-activity identifiers.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "trip not found")
		return
	}
	dayIndex, err := strconv.Atoi(chi.URLParam(r, "dayIndex"))
	if err != nil {
		requestBody(w, "dayIndex must be an integer")
		return
	}
	activityIndex, err := strconv.Atoi(chi.URLParam(r, "activityIndex"))
	if err != nil {
		requestBody(w, "activityIndex must be an integer")
		return
	}

	var body activityPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestBody(w, "request body must be valid JSON")
		return
	}

	updated, err := s.trips.UpdateActivity(r.Context(), ownerID, id, dayIndex, activityIndex, domain.ActivityPatch{
		Title:    body.Title,
		Time:     body.Time,
		Location: body.Location,
		Notes:    body.Notes,
		Cost:     body.Cost,
	})
	if err != nil {
		writeDomainError(w, s.log, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /v1/trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "trip not found")
		return
	}

	if err := s.trips.Delete(r.Context(), ownerID, id); err != nil {
		writeDomainError(w, s.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// queryInt parses an integer query parameter, returning nil when absent or
// malformed so pagination falls back to its defaults.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
