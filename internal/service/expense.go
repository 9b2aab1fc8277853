package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mpatel-dev/wanderplan/backend/internal/domain"
	"github.com/mpatel-dev/wanderplan/backend/internal/repo"
)

// ExpenseService implements business logic for Expense operations.
// All operations are owner-scoped: a foreign expense surfaces as
// domain.ErrNotFound, never as someone else's record.
type ExpenseService struct {
	repo repo.ExpenseRepo
}

// NewExpenseService constructs an ExpenseService backed by the provided repo.
func NewExpenseService(r repo.ExpenseRepo) *ExpenseService {
	return &ExpenseService{repo: r}
}

// Create validates and persists a new expense for the owner.
func (s *ExpenseService) Create(ctx context.Context, ownerID string, in domain.ExpenseInput) (domain.Expense, error) {
	if ownerID == "" {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", domain.ErrUnauthorized)
	}
	if err := in.Validate(); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Expense{
		OwnerID:     ownerID,
		Amount:      in.Amount,
		Category:    in.Category,
		Date:        in.ParsedDate(),
		Description: in.Description,
	})
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}
	return created, nil
}

// ListByOwner returns the owner's expenses matching the filter.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ExpenseService) ListByOwner(ctx context.Context, ownerID string, f repo.ExpenseFilter, p domain.PaginationParams) ([]domain.Expense, error) {
	expenses, err := s.repo.ListByOwner(ctx, ownerID, f, p)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.ListByOwner: %w", err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, nil
}

// Update validates and overwrites an existing expense owned by the caller.
// Returns domain.ErrNotFound when no such expense exists for this owner.
func (s *ExpenseService) Update(ctx context.Context, ownerID string, id uuid.UUID, in domain.ExpenseInput) (domain.Expense, error) {
	if err := in.Validate(); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Update: %w", err)
	}

	updated, err := s.repo.Update(ctx, domain.Expense{
		ID:          id,
		OwnerID:     ownerID,
		Amount:      in.Amount,
		Category:    in.Category,
		Date:        in.ParsedDate(),
		Description: in.Description,
	})
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes the owner's expense by ID.
// Returns domain.ErrNotFound when no such expense exists for this owner.
func (s *ExpenseService) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("service.ExpenseService.Delete: %w", err)
	}
	return nil
}
