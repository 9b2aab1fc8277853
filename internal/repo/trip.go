// Package repo contains all database access logic for the WanderPlan API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mpatel-dev/wanderplan/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for Trips. Each trip is stored
// as one row with the full day/activity structure embedded in a jsonb column,
// mirroring a one-document-per-trip layout.
//
// Ownership is NOT enforced here: GetByID returns whatever row matches the id.
// The service layer compares the stored owner against the caller after every
// fetch and before any mutation.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// ListByOwner returns one page of the owner's trips, newest first, plus
	// the total count for that owner.
	ListByOwner(ctx context.Context, ownerID string, p domain.PaginationParams) ([]domain.Trip, int64, error)

	// Update overwrites the mutable fields of an existing trip (including the
	// whole embedded days document) and returns the updated record.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, owner_id, destination, start_date, end_date,
		budget, travelers, style, notes, overview, days, created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (owner_id, destination, start_date, end_date,
		                   budget, travelers, style, notes, overview, days)
		VALUES (@owner_id, @destination, @start_date, @end_date,
		        @budget, @travelers, @style, @notes, @overview, @days)
		RETURNING ` + tripColumns

	daysJSON, err := marshalDays(trip.Days)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}

	args := pgx.NamedArgs{
		"owner_id":    trip.OwnerID,
		"destination": trip.Destination,
		"start_date":  trip.StartDate,
		"end_date":    trip.EndDate,
		"budget":      trip.Budget,    // nil becomes NULL
		"travelers":   trip.Travelers, // nil becomes NULL
		"style":       trip.Style,
		"notes":       trip.Notes,
		"overview":    trip.Overview,
		"days":        daysJSON,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByOwner returns one page of the owner's trips ordered by creation time
// descending (most recent first), plus the owner's total trip count.
func (r *pgTripRepo) ListByOwner(ctx context.Context, ownerID string, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	const countQ = `SELECT count(*) FROM trips WHERE owner_id = @owner_id`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"owner_id": ownerID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListByOwner: count: %w", wrapStorage(err))
	}

	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE owner_id = @owner_id
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"owner_id": ownerID,
		"limit":    p.Limit,
		"offset":   p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListByOwner: %w", wrapStorage(err))
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.ListByOwner: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListByOwner: rows: %w", wrapStorage(err))
	}

	return trips, total, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
// The whole days document is rewritten — the storage layer has no notion of a
// partial nested update.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET destination = @destination,
		    start_date  = @start_date,
		    end_date    = @end_date,
		    budget      = @budget,
		    travelers   = @travelers,
		    style       = @style,
		    notes       = @notes,
		    overview    = @overview,
		    days        = @days,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	daysJSON, err := marshalDays(trip.Days)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}

	args := pgx.NamedArgs{
		"id":          trip.ID,
		"destination": trip.Destination,
		"start_date":  trip.StartDate,
		"end_date":    trip.EndDate,
		"budget":      trip.Budget,
		"travelers":   trip.Travelers,
		"style":       trip.Style,
		"notes":       trip.Notes,
		"overview":    trip.Overview,
		"days":        daysJSON,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", wrapStorage(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID, nullable budget/travelers, DATE, and jsonb conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t        domain.Trip
		id       pgtype.UUID
		start    pgtype.Date
		end      pgtype.Date
		daysJSON []byte
	)

	err := s.Scan(&id, &t.OwnerID, &t.Destination, &start, &end,
		&t.Budget, &t.Travelers, &t.Style, &t.Notes, &t.Overview,
		&daysJSON, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, wrapStorage(err)
	}

	t.ID = uuid.UUID(id.Bytes)
	t.StartDate = start.Time
	t.EndDate = end.Time

	if len(daysJSON) > 0 {
		if err := json.Unmarshal(daysJSON, &t.Days); err != nil {
			return domain.Trip{}, fmt.Errorf("decode days: %w", err)
		}
	}
	if t.Days == nil {
		t.Days = []domain.Day{}
	}

	return t, nil
}

// marshalDays encodes the embedded day/activity document for the jsonb column.
// A nil slice is stored as an empty array, never as SQL NULL.
func marshalDays(days []domain.Day) ([]byte, error) {
	if days == nil {
		days = []domain.Day{}
	}
	b, err := json.Marshal(days)
	if err != nil {
		return nil, fmt.Errorf("encode days: %w", err)
	}
	return b, nil
}

// wrapStorage tags a driver-level failure with domain.ErrStorage while
// preserving the original error chain for logs.
func wrapStorage(err error) error {
	return errors.Join(domain.ErrStorage, err)
}
