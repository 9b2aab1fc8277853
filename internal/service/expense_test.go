package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpatel-dev/wanderplan/backend/internal/domain"
	"github.com/mpatel-dev/wanderplan/backend/internal/repo"
	"github.com/mpatel-dev/wanderplan/backend/internal/service"
)

// ---- mock repo --------------------------------------------------------------

// mockExpenseRepo is a hand-written test double for repo.ExpenseRepo.
type mockExpenseRepo struct {
	create      func(ctx context.Context, e domain.Expense) (domain.Expense, error)
	getByID     func(ctx context.Context, ownerID string, id uuid.UUID) (domain.Expense, error)
	listByOwner func(ctx context.Context, ownerID string, f repo.ExpenseFilter, p domain.PaginationParams) ([]domain.Expense, error)
	listRecent  func(ctx context.Context, ownerID string, limit int) ([]domain.Expense, error)
	update      func(ctx context.Context, e domain.Expense) (domain.Expense, error)
	delete      func(ctx context.Context, ownerID string, id uuid.UUID) error
}

func (m *mockExpenseRepo) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	return m.create(ctx, e)
}
func (m *mockExpenseRepo) GetByID(ctx context.Context, ownerID string, id uuid.UUID) (domain.Expense, error) {
	return m.getByID(ctx, ownerID, id)
}
func (m *mockExpenseRepo) ListByOwner(ctx context.Context, ownerID string, f repo.ExpenseFilter, p domain.PaginationParams) ([]domain.Expense, error) {
	return m.listByOwner(ctx, ownerID, f, p)
}
func (m *mockExpenseRepo) ListRecent(ctx context.Context, ownerID string, limit int) ([]domain.Expense, error) {
	return m.listRecent(ctx, ownerID, limit)
}
func (m *mockExpenseRepo) Update(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	return m.update(ctx, e)
}
func (m *mockExpenseRepo) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	return m.delete(ctx, ownerID, id)
}

// compile-time check: mockExpenseRepo must satisfy repo.ExpenseRepo.
var _ repo.ExpenseRepo = (*mockExpenseRepo)(nil)

// ---- helpers ----------------------------------------------------------------

func validExpenseInput() domain.ExpenseInput {
	return domain.ExpenseInput{
		Amount:   45.50,
		Category: "Food",
		Date:     "2025-02-01",
	}
}

// ---- Create -----------------------------------------------------------------

func TestExpenseService_Create_OK(t *testing.T) {
	svc := service.NewExpenseService(&mockExpenseRepo{
		create: func(_ context.Context, e domain.Expense) (domain.Expense, error) {
			assert.Equal(t, "user-1", e.OwnerID)
			assert.Equal(t, 45.50, e.Amount)
			assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), e.Date)
			e.ID = uuid.New()
			return e, nil
		},
	})

	got, err := svc.Create(context.Background(), "user-1", validExpenseInput())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestExpenseService_Create_EmptyOwner(t *testing.T) {
	svc := service.NewExpenseService(&mockExpenseRepo{})

	_, err := svc.Create(context.Background(), "", validExpenseInput())

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestExpenseService_Create_InvalidAmount(t *testing.T) {
	svc := service.NewExpenseService(&mockExpenseRepo{})

	in := validExpenseInput()
	in.Amount = 0

	_, err := svc.Create(context.Background(), "user-1", in)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- ListByOwner ------------------------------------------------------------

func TestExpenseService_ListByOwner_PassesFilter(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := service.NewExpenseService(&mockExpenseRepo{
		listByOwner: func(_ context.Context, ownerID string, f repo.ExpenseFilter, _ domain.PaginationParams) ([]domain.Expense, error) {
			assert.Equal(t, "user-1", ownerID)
			assert.Equal(t, "Food", f.Category)
			assert.Equal(t, &from, f.From)
			assert.True(t, f.SortByAmount)
			return []domain.Expense{{ID: uuid.New()}}, nil
		},
	})

	got, err := svc.ListByOwner(context.Background(), "user-1",
		repo.ExpenseFilter{Category: "Food", From: &from, SortByAmount: true},
		domain.PaginationParams{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestExpenseService_ListByOwner_ReturnsEmptySlice(t *testing.T) {
	svc := service.NewExpenseService(&mockExpenseRepo{
		listByOwner: func(_ context.Context, _ string, _ repo.ExpenseFilter, _ domain.PaginationParams) ([]domain.Expense, error) {
			return nil, nil
		},
	})

	got, err := svc.ListByOwner(context.Background(), "user-1", repo.ExpenseFilter{}, domain.PaginationParams{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- Update -----------------------------------------------------------------

func TestExpenseService_Update_OK(t *testing.T) {
	id := uuid.New()
	svc := service.NewExpenseService(&mockExpenseRepo{
		update: func(_ context.Context, e domain.Expense) (domain.Expense, error) {
			assert.Equal(t, id, e.ID)
			assert.Equal(t, "user-1", e.OwnerID)
			return e, nil
		},
	})

	got, err := svc.Update(context.Background(), "user-1", id, validExpenseInput())

	require.NoError(t, err)
	assert.Equal(t, "Food", got.Category)
}

// TestExpenseService_Update_ForeignExpense verifies the owner-scoped masking:
// another owner's expense is indistinguishable from a missing one.
func TestExpenseService_Update_ForeignExpense(t *testing.T) {
	svc := service.NewExpenseService(&mockExpenseRepo{
		update: func(_ context.Context, _ domain.Expense) (domain.Expense, error) {
			return domain.Expense{}, domain.ErrNotFound
		},
	})

	_, err := svc.Update(context.Background(), "user-2", uuid.New(), validExpenseInput())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExpenseService_Update_InvalidInput(t *testing.T) {
	svc := service.NewExpenseService(&mockExpenseRepo{})

	in := validExpenseInput()
	in.Category = ""

	_, err := svc.Update(context.Background(), "user-1", uuid.New(), in)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Delete -----------------------------------------------------------------

func TestExpenseService_Delete_OK(t *testing.T) {
	svc := service.NewExpenseService(&mockExpenseRepo{
		delete: func(_ context.Context, ownerID string, _ uuid.UUID) error {
			assert.Equal(t, "user-1", ownerID)
			return nil
		},
	})

	require.NoError(t, svc.Delete(context.Background(), "user-1", uuid.New()))
}

func TestExpenseService_Delete_NotFound(t *testing.T) {
	svc := service.NewExpenseService(&mockExpenseRepo{
		delete: func(_ context.Context, _ string, _ uuid.UUID) error {
			return domain.ErrNotFound
		},
	})

	err := svc.Delete(context.Background(), "user-1", uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExpenseService_Delete_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	svc := service.NewExpenseService(&mockExpenseRepo{
		delete: func(_ context.Context, _ string, _ uuid.UUID) error {
			return repoErr
		},
	})

	err := svc.Delete(context.Background(), "user-1", uuid.New())

	assert.ErrorIs(t, err, repoErr)
}
