// Package service contains the business logic for the WanderPlan API.
// Services validate inputs, enforce ownership, and orchestrate repo and
// planner calls. No SQL lives here — services depend on repo interfaces,
// not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/mpatel-dev/wanderplan/backend/internal/domain"
	"github.com/mpatel-dev/wanderplan/backend/internal/planner"
	"github.com/mpatel-dev/wanderplan/backend/internal/repo"
)

// Generator is the slice of the planner the trip service depends on.
// Defined here (in the consumer package) so tests can inject a scripted
// generator without a provider or network.
type Generator interface {
	Generate(ctx context.Context, req planner.Request) (planner.Itinerary, planner.Outcome, error)
}

// TripService implements business logic for Trip operations: creation with
// synchronous itinerary generation, owner-scoped reads, the positional
// activity editor, and deletion.
type TripService struct {
	repo  repo.TripRepo
	gen   Generator
	cache *gocache.Cache
	log   *slog.Logger
}

// NewTripService constructs a TripService backed by the provided repo and
// generator. Read results are cached briefly; every mutation invalidates the
// cached entry so readers never observe a stale edit.
func NewTripService(r repo.TripRepo, gen Generator, log *slog.Logger) *TripService {
	return &TripService{
		repo:  r,
		gen:   gen,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
		log:   log,
	}
}

// Create validates the input, generates the itinerary synchronously (bounded
// by the planner's per-attempt timeout, with its retry and fallback policy),
// and persists the resulting trip for the owner.
func (s *TripService) Create(ctx context.Context, ownerID string, in domain.TripInput) (domain.Trip, error) {
	if ownerID == "" {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", domain.ErrUnauthorized)
	}
	if err := in.Validate(); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	start, end := in.Dates()
	itinerary, outcome, err := s.gen.Generate(ctx, planner.Request{
		Destination:     in.Destination,
		StartDate:       start,
		EndDate:         end,
		TravelerType:    in.Style,
		Budget:          in.Budget,
		Travelers:       in.Travelers,
		Notes:           in.Notes,
		DisableFallback: in.DisableFallback,
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	s.log.Info("itinerary ready",
		"destination", in.Destination,
		"outcome", outcome.String(),
		"days", len(itinerary.Days),
	)

	created, err := s.repo.Create(ctx, domain.Trip{
		OwnerID:     ownerID,
		Destination: in.Destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      in.Budget,
		Travelers:   in.Travelers,
		Style:       in.Style,
		Notes:       in.Notes,
		Overview:    itinerary.Overview,
		Days:        itinerary.Days,
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single trip. The ownership check runs on every call, even
// on a cache hit, so a cached record can never leak across owners.
// Returns domain.ErrForbidden when the caller is not the owner.
func (s *TripService) GetByID(ctx context.Context, ownerID string, id uuid.UUID) (domain.Trip, error) {
	if cached, ok := s.cache.Get(id.String()); ok {
		trip := cached.(domain.Trip)
		if trip.OwnerID != ownerID {
			return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", domain.ErrForbidden)
		}
		return trip, nil
	}

	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	if trip.OwnerID != ownerID {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", domain.ErrForbidden)
	}

	s.cache.Set(id.String(), trip, gocache.DefaultExpiration)
	return trip, nil
}

// ListByOwner returns one page of the caller's trips, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListByOwner(ctx context.Context, ownerID string, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.repo.ListByOwner(ctx, ownerID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListByOwner: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// UpdateActivity replaces the fields of the activity at (dayIndex,
// activityIndex) inside the owner's trip and persists the whole document.
// The stored trip is left untouched when the indices do not resolve to an
// existing activity (domain.ErrNotFound) or the caller is not the owner
// (domain.ErrForbidden). Replaying an identical patch changes nothing but
// the updated_at timestamp.
func (s *TripService) UpdateActivity(ctx context.Context, ownerID string, tripID uuid.UUID, dayIndex, activityIndex int, patch domain.ActivityPatch) (domain.Trip, error) {
	if patch.Title == "" {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateActivity: %w: title is required", domain.ErrValidation)
	}
	if dayIndex < 0 || activityIndex < 0 {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateActivity: %w: activity indices must be non-negative", domain.ErrValidation)
	}

	// Always fetch fresh for an edit; the cache is for reads only.
	trip, err := s.repo.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateActivity: %w", err)
	}
	if trip.OwnerID != ownerID {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateActivity: %w", domain.ErrForbidden)
	}
	if dayIndex >= len(trip.Days) || activityIndex >= len(trip.Days[dayIndex].Activities) {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateActivity: %w", domain.ErrNotFound)
	}

	patch.Apply(&trip.Days[dayIndex].Activities[activityIndex])

	updated, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateActivity: %w", err)
	}

	s.cache.Delete(tripID.String())
	return updated, nil
}

// Delete permanently removes the owner's trip. No soft delete.
// Returns domain.ErrForbidden when the caller is not the owner.
func (s *TripService) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if trip.OwnerID != ownerID {
		return fmt.Errorf("service.TripService.Delete: %w", domain.ErrForbidden)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}

	s.cache.Delete(id.String())
	return nil
}
