package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mpatel-dev/wanderplan/backend/internal/domain"
	"github.com/mpatel-dev/wanderplan/backend/internal/middleware"
	"github.com/mpatel-dev/wanderplan/backend/internal/repo"
)

// expenseResponse is the wire shape of an expense.
type expenseResponse struct {
	ID          uuid.UUID `json:"id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func expenseToResponse(e domain.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date.Format(domain.DateLayout),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// CreateExpense handles POST /v1/expenses.
func (s *Server) CreateExpense(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	var in domain.ExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		requestBody(w, "request body must be valid JSON")
		return
	}

	created, err := s.expenses.Create(r.Context(), ownerID, in)
	if err != nil {
		writeDomainError(w, s.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, expenseToResponse(created))
}

// ListExpenses handles GET /v1/expenses.
// Query parameters: ?category= (exact match), ?from=YYYY-MM-DD (dated on or
// after), ?sort=amount (ascending by amount instead of newest-first), plus
// ?page= and ?limit=.
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	filter := repo.ExpenseFilter{
		Category:     r.URL.Query().Get("category"),
		SortByAmount: r.URL.Query().Get("sort") == "amount",
	}
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := time.Parse(domain.DateLayout, raw)
		if err != nil {
			requestBody(w, "from must be a date in YYYY-MM-DD format")
			return
		}
		filter.From = &from
	}

	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	expenses, err := s.expenses.ListByOwner(r.Context(), ownerID, filter, params)
	if err != nil {
		writeDomainError(w, s.log, err)
		return
	}

	data := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		data[i] = expenseToResponse(e)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// UpdateExpense handles PUT /v1/expenses/{expenseID}.
func (s *Server) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "expenseID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "expense not found")
		return
	}

	var in domain.ExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		requestBody(w, "request body must be valid JSON")
		return
	}

	updated, err := s.expenses.Update(r.Context(), ownerID, id, in)
	if err != nil {
		writeDomainError(w, s.log, err)
		return
	}

	writeJSON(w, http.StatusOK, expenseToResponse(updated))
}

// DeleteExpense handles DELETE /v1/expenses/{expenseID}.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "expenseID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "expense not found")
		return
	}

	if err := s.expenses.Delete(r.Context(), ownerID, id); err != nil {
		writeDomainError(w, s.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
