package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpatel-dev/wanderplan/backend/internal/domain"
	"github.com/mpatel-dev/wanderplan/backend/internal/repo"
)

func sampleExpense(ownerID string) domain.Expense {
	return domain.Expense{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Amount:      45.50,
		Category:    "Food",
		Date:        time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Description: "Dinner",
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func TestExpenses_RequireAuth(t *testing.T) {
	router := newTestRouter(&mockTripService{}, &mockExpenseService{}, &mockAdviceService{})

	for _, tc := range []struct{ method, target string }{
		{http.MethodPost, "/v1/expenses"},
		{http.MethodGet, "/v1/expenses"},
		{http.MethodPut, "/v1/expenses/" + uuid.NewString()},
		{http.MethodDelete, "/v1/expenses/" + uuid.NewString()},
	} {
		rec := doRequest(t, router, tc.method, tc.target, "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.target)
	}
}

func TestCreateExpense_OK(t *testing.T) {
	expense := sampleExpense("user-1")
	router := newTestRouter(&mockTripService{}, &mockExpenseService{
		create: func(_ context.Context, ownerID string, in domain.ExpenseInput) (domain.Expense, error) {
			assert.Equal(t, "user-1", ownerID)
			assert.Equal(t, 45.50, in.Amount)
			return expense, nil
		},
	}, &mockAdviceService{})

	rec := doRequest(t, router, http.MethodPost, "/v1/expenses", bearerToken(t, "user-1"), map[string]any{
		"amount":   45.50,
		"category": "Food",
		"date":     "2025-02-01",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, expense.ID.String(), got["id"])
	assert.Equal(t, "2025-02-01", got["date"])
}

func TestCreateExpense_ValidationError(t *testing.T) {
	router := newTestRouter(&mockTripService{}, &mockExpenseService{
		create: func(_ context.Context, _ string, in domain.ExpenseInput) (domain.Expense, error) {
			return domain.Expense{}, in.Validate()
		},
	}, &mockAdviceService{})

	rec := doRequest(t, router, http.MethodPost, "/v1/expenses", bearerToken(t, "user-1"), map[string]any{
		"amount":   0,
		"category": "Food",
		"date":     "2025-02-01",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error.Message, "amount")
}

// TestListExpenses_Filters verifies that query parameters arrive at the
// service as a populated filter.
func TestListExpenses_Filters(t *testing.T) {
	router := newTestRouter(&mockTripService{}, &mockExpenseService{
		listByOwner: func(_ context.Context, _ string, f repo.ExpenseFilter, p domain.PaginationParams) ([]domain.Expense, error) {
			assert.Equal(t, "Food", f.Category)
			require.NotNil(t, f.From)
			assert.Equal(t, "2025-01-01", f.From.Format(domain.DateLayout))
			assert.True(t, f.SortByAmount)
			assert.Equal(t, 10, p.Limit)
			return []domain.Expense{sampleExpense("user-1")}, nil
		},
	}, &mockAdviceService{})

	rec := doRequest(t, router, http.MethodGet,
		"/v1/expenses?category=Food&from=2025-01-01&sort=amount&limit=10",
		bearerToken(t, "user-1"), nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Data, 1)
}

func TestListExpenses_BadFromDate(t *testing.T) {
	router := newTestRouter(&mockTripService{}, &mockExpenseService{}, &mockAdviceService{})

	rec := doRequest(t, router, http.MethodGet, "/v1/expenses?from=tomorrow", bearerToken(t, "user-1"), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateExpense_NotFound(t *testing.T) {
	router := newTestRouter(&mockTripService{}, &mockExpenseService{
		update: func(_ context.Context, _ string, _ uuid.UUID, _ domain.ExpenseInput) (domain.Expense, error) {
			return domain.Expense{}, domain.ErrNotFound
		},
	}, &mockAdviceService{})

	rec := doRequest(t, router, http.MethodPut, "/v1/expenses/"+uuid.NewString(), bearerToken(t, "user-1"), map[string]any{
		"amount":   10.0,
		"category": "Food",
		"date":     "2025-02-01",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteExpense_OK(t *testing.T) {
	id := uuid.New()
	router := newTestRouter(&mockTripService{}, &mockExpenseService{
		delete: func(_ context.Context, ownerID string, got uuid.UUID) error {
			assert.Equal(t, "user-1", ownerID)
			assert.Equal(t, id, got)
			return nil
		},
	}, &mockAdviceService{})

	rec := doRequest(t, router, http.MethodDelete, "/v1/expenses/"+id.String(), bearerToken(t, "user-1"), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
