package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized is returned when no user identity is present on a request
// that requires one. Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden is returned when an authenticated caller is not the owner of
// the target record. Handlers should map this to HTTP 403. Ownership is
// checked after fetch and before any mutation is applied.
var ErrForbidden = errors.New("forbidden")

// ErrGeneration is returned when itinerary generation has exhausted its retry
// and the caller opted out of the fallback. Handlers should map this to
// HTTP 502 — the upstream capability failed, not the caller's input.
var ErrGeneration = errors.New("generation failed")

// ErrStorage wraps persistence failures (misconfigured connection, query
// errors). Handlers surface it as a generic failure; it is never retried.
var ErrStorage = errors.New("storage error")
