// Package handler implements the HTTP handlers for the WanderPlan API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, expense.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mpatel-dev/wanderplan/backend/internal/domain"
	"github.com/mpatel-dev/wanderplan/backend/internal/repo"
	"github.com/mpatel-dev/wanderplan/backend/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or planner.
type TripServicer interface {
	Create(ctx context.Context, ownerID string, in domain.TripInput) (domain.Trip, error)
	GetByID(ctx context.Context, ownerID string, id uuid.UUID) (domain.Trip, error)
	ListByOwner(ctx context.Context, ownerID string, p domain.PaginationParams) ([]domain.Trip, int64, error)
	UpdateActivity(ctx context.Context, ownerID string, tripID uuid.UUID, dayIndex, activityIndex int, patch domain.ActivityPatch) (domain.Trip, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}

// ExpenseServicer defines the business operations the expense handlers depend on.
type ExpenseServicer interface {
	Create(ctx context.Context, ownerID string, in domain.ExpenseInput) (domain.Expense, error)
	ListByOwner(ctx context.Context, ownerID string, f repo.ExpenseFilter, p domain.PaginationParams) ([]domain.Expense, error)
	Update(ctx context.Context, ownerID string, id uuid.UUID, in domain.ExpenseInput) (domain.Expense, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}

// Advicer defines the advice operation the advice handler depends on.
type Advicer interface {
	ForOwner(ctx context.Context, ownerID string) (service.Advice, error)
}

// Server holds the handler dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips    TripServicer
	expenses ExpenseServicer
	advice   Advicer
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, expenses ExpenseServicer, advice Advicer, log *slog.Logger) *Server {
	return &Server{trips: trips, expenses: expenses, advice: advice, log: log}
}
