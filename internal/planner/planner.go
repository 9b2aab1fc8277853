package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/mpatel-dev/wanderplan/backend/internal/domain"
)

// Outcome describes how an itinerary was obtained. It replaces the nested
// try/catch control flow of retry-then-fallback with an explicit three-state
// result. Outcome is meaningful only when Generate returns a nil error.
type Outcome int

const (
	// OutcomeGenerated means the first provider attempt succeeded.
	OutcomeGenerated Outcome = iota
	// OutcomeGeneratedAfterRetry means the first attempt failed and the
	// single retry succeeded.
	OutcomeGeneratedAfterRetry
	// OutcomeFallback means both attempts failed and the deterministic
	// placeholder itinerary was returned instead.
	OutcomeFallback
)

// String returns a log-friendly name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeGenerated:
		return "generated"
	case OutcomeGeneratedAfterRetry:
		return "generated_after_retry"
	case OutcomeFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Itinerary is the generator's result: a short overview plus one Day per
// calendar date of the trip.
type Itinerary struct {
	Overview string
	Days     []domain.Day
}

// Planner orchestrates prompt construction, the provider call, response
// validation, the single retry, and fallback synthesis.
type Planner struct {
	provider Provider
	timeout  time.Duration
	log      *slog.Logger
}

// New constructs a Planner. timeout bounds each individual provider call;
// pass 0 to use the 30 second default.
func New(provider Provider, timeout time.Duration, log *slog.Logger) *Planner {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Planner{provider: provider, timeout: timeout, log: log}
}

// Generate returns an itinerary whose Days length always equals the trip's
// inclusive day count — unless req.DisableFallback is set and both provider
// attempts failed, in which case it returns an error wrapping
// domain.ErrGeneration rather than a malformed result.
//
// Each attempt is bounded by the configured timeout. A timeout abandons the
// local wait only; the remote call may keep running (accepted leak).
func (p *Planner) Generate(ctx context.Context, req Request) (Itinerary, Outcome, error) {
	prompt := BuildPrompt(req)
	wantDays := domain.InclusiveDayCount(req.StartDate, req.EndDate)

	var (
		result   Itinerary
		attempts int
	)
	backoff := retry.WithMaxRetries(1, retry.NewConstant(time.Second))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		it, err := p.generateOnce(ctx, prompt, wantDays)
		if err != nil {
			p.log.Warn("itinerary attempt failed",
				"attempt", attempts,
				"destination", req.Destination,
				"error", err,
			)
			return retry.RetryableError(err)
		}
		result = it
		return nil
	})
	if err == nil {
		if attempts > 1 {
			return result, OutcomeGeneratedAfterRetry, nil
		}
		return result, OutcomeGenerated, nil
	}

	if req.DisableFallback {
		return Itinerary{}, OutcomeFallback, fmt.Errorf("planner.Generate: %w: %v", domain.ErrGeneration, err)
	}

	p.log.Info("itinerary generation exhausted, using fallback",
		"destination", req.Destination,
		"days", wantDays,
	)
	return Fallback(req), OutcomeFallback, nil
}

// generateOnce performs one full prompt → provider → parse → validate pass.
func (p *Planner) generateOnce(ctx context.Context, prompt string, wantDays int) (Itinerary, error) {
	cctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	raw, err := p.provider.Complete(cctx, prompt, CompletionOptions{Temperature: 0.2})
	if err != nil {
		return Itinerary{}, err
	}
	return parseItinerary(raw, wantDays)
}
