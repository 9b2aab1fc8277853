package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mpatel-dev/wanderplan/backend/internal/domain"
)

// ExpenseFilter narrows and orders an expense listing.
type ExpenseFilter struct {
	// Category, when non-empty, restricts results to that exact category.
	Category string
	// From, when non-nil, restricts results to expenses dated on or after it.
	From *time.Time
	// SortByAmount orders ascending by amount instead of newest-first.
	SortByAmount bool
}

// ExpenseRepo defines the persistence operations for Expenses.
// Unlike trips, every operation here is owner-scoped in SQL: a foreign
// expense is indistinguishable from a missing one and surfaces as
// domain.ErrNotFound.
type ExpenseRepo interface {
	// Create inserts a new expense and returns the persisted record.
	Create(ctx context.Context, e domain.Expense) (domain.Expense, error)

	// GetByID retrieves a single expense by ID, scoped to ownerID.
	// Returns domain.ErrNotFound if no matching expense exists for that owner.
	GetByID(ctx context.Context, ownerID string, id uuid.UUID) (domain.Expense, error)

	// ListByOwner returns the owner's expenses matching the filter.
	ListByOwner(ctx context.Context, ownerID string, f ExpenseFilter, p domain.PaginationParams) ([]domain.Expense, error)

	// ListRecent returns up to limit of the owner's most recently dated expenses.
	ListRecent(ctx context.Context, ownerID string, limit int) ([]domain.Expense, error)

	// Update overwrites the mutable fields of an expense, scoped to ownerID.
	// Returns domain.ErrNotFound if no matching expense exists for that owner.
	Update(ctx context.Context, e domain.Expense) (domain.Expense, error)

	// Delete removes an expense by ID, scoped to ownerID.
	// Returns domain.ErrNotFound if no matching expense exists for that owner.
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}

// pgExpenseRepo is the Postgres implementation of ExpenseRepo.
type pgExpenseRepo struct {
	db db
}

// NewExpenseRepo constructs an ExpenseRepo backed by the provided db connection.
func NewExpenseRepo(db db) ExpenseRepo {
	return &pgExpenseRepo{db: db}
}

const expenseColumns = `id, owner_id, amount, category, date, description, created_at, updated_at`

func (r *pgExpenseRepo) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	const q = `
		INSERT INTO expenses (owner_id, amount, category, date, description)
		VALUES (@owner_id, @amount, @category, @date, @description)
		RETURNING ` + expenseColumns

	args := pgx.NamedArgs{
		"owner_id":    e.OwnerID,
		"amount":      e.Amount,
		"category":    e.Category,
		"date":        e.Date,
		"description": e.Description,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanExpense(row)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgExpenseRepo) GetByID(ctx context.Context, ownerID string, id uuid.UUID) (domain.Expense, error) {
	const q = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE id = @id AND owner_id = @owner_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "owner_id": ownerID})
	result, err := scanExpense(row)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByOwner returns the owner's expenses matching the filter. Default order
// is newest-first by creation time; SortByAmount switches to ascending amount.
func (r *pgExpenseRepo) ListByOwner(ctx context.Context, ownerID string, f ExpenseFilter, p domain.PaginationParams) ([]domain.Expense, error) {
	q := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE owner_id = @owner_id`
	args := pgx.NamedArgs{
		"owner_id": ownerID,
		"limit":    p.Limit,
		"offset":   p.Offset(),
	}

	if f.Category != "" {
		q += ` AND category = @category`
		args["category"] = f.Category
	}
	if f.From != nil {
		q += ` AND date >= @from`
		args["from"] = *f.From
	}
	if f.SortByAmount {
		q += ` ORDER BY amount ASC`
	} else {
		q += ` ORDER BY created_at DESC`
	}
	q += ` LIMIT @limit OFFSET @offset`

	return r.queryExpenses(ctx, "ListByOwner", q, args)
}

// ListRecent returns the owner's most recently dated expenses, newest first.
// Used to build the context for AI budgeting advice.
func (r *pgExpenseRepo) ListRecent(ctx context.Context, ownerID string, limit int) ([]domain.Expense, error) {
	const q = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE owner_id = @owner_id
		ORDER BY date DESC
		LIMIT @limit`

	return r.queryExpenses(ctx, "ListRecent", q, pgx.NamedArgs{"owner_id": ownerID, "limit": limit})
}

func (r *pgExpenseRepo) Update(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	const q = `
		UPDATE expenses
		SET amount      = @amount,
		    category    = @category,
		    date        = @date,
		    description = @description,
		    updated_at  = now()
		WHERE id = @id AND owner_id = @owner_id
		RETURNING ` + expenseColumns

	args := pgx.NamedArgs{
		"id":          e.ID,
		"owner_id":    e.OwnerID,
		"amount":      e.Amount,
		"category":    e.Category,
		"date":        e.Date,
		"description": e.Description,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanExpense(row)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgExpenseRepo) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	const q = `DELETE FROM expenses WHERE id = @id AND owner_id = @owner_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", wrapStorage(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgExpenseRepo) queryExpenses(ctx context.Context, op, q string, args pgx.NamedArgs) ([]domain.Expense, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.%s: %w", op, wrapStorage(err))
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ExpenseRepo.%s: scan: %w", op, err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.%s: rows: %w", op, wrapStorage(err))
	}
	return expenses, nil
}

// scanExpense maps a single database row into a domain.Expense.
func scanExpense(s scanner) (domain.Expense, error) {
	var (
		e    domain.Expense
		id   pgtype.UUID
		date pgtype.Date
	)

	err := s.Scan(&id, &e.OwnerID, &e.Amount, &e.Category, &date,
		&e.Description, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Expense{}, domain.ErrNotFound
		}
		return domain.Expense{}, wrapStorage(err)
	}

	e.ID = uuid.UUID(id.Bytes)
	e.Date = date.Time
	return e, nil
}
