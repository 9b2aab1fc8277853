// Package planner turns validated trip parameters into a day-by-day itinerary
// by prompting a remote text-completion provider, validating the returned
// JSON, and falling back to a deterministic placeholder when the provider
// cannot deliver.
package planner

import "context"

// Provider is the remote text-completion capability (OpenAI, Anthropic, etc.).
// Implementations return free-form text with no guarantee of schema
// compliance — all structure is validated by the caller.
type Provider interface {
	// Complete sends a prompt and returns the raw completion text.
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)

	// IsAvailable reports whether the provider is configured (e.g. an API key
	// is present). Callers use this to short-circuit to degraded behaviour
	// without burning a network round trip.
	IsAvailable() bool
}

// CompletionOptions configures a single completion request.
type CompletionOptions struct {
	Temperature float64
	MaxTokens   int
}
