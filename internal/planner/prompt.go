package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/mpatel-dev/wanderplan/backend/internal/domain"
)

// Request carries the validated trip parameters for one generation attempt.
type Request struct {
	Destination  string
	StartDate    time.Time
	EndDate      time.Time
	TravelerType string // free-text style, e.g. "solo", "family"
	Budget       *float64
	Travelers    *int
	Notes        string

	// DisableFallback propagates generation failure to the caller instead of
	// synthesizing the placeholder itinerary.
	DisableFallback bool
}

// BuildPrompt constructs the instruction string sent to the provider.
// Pure string construction: no I/O, no randomness. The prompt pins down the
// exact day count and the full required field set per activity so the
// response can be validated mechanically.
func BuildPrompt(req Request) string {
	dates := domain.DateStrings(req.StartDate, req.EndDate)

	var b strings.Builder
	b.WriteString("You are an expert travel planner. Generate a detailed trip itinerary for:\n")
	fmt.Fprintf(&b, "Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "Dates: %s to %s\n",
		req.StartDate.Format(domain.DateLayout), req.EndDate.Format(domain.DateLayout))
	if req.Budget != nil {
		fmt.Fprintf(&b, "Budget: %.0f\n", *req.Budget)
	}
	if req.Travelers != nil {
		fmt.Fprintf(&b, "Travelers: %d\n", *req.Travelers)
	}
	if req.TravelerType != "" {
		fmt.Fprintf(&b, "Style: %s\n", req.TravelerType)
	}
	if req.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", req.Notes)
	}

	fmt.Fprintf(&b, "\nThe trip spans exactly %d days. Produce exactly %d day entries, one for each of these dates in order: %s.\n",
		len(dates), len(dates), strings.Join(dates, ", "))
	b.WriteString("Use real, specific place names for every location — never generic placeholders like \"a local restaurant\".\n")
	b.WriteString("Every activity MUST include all of these fields: title (string), time (HH:MM), location (string), notes (string), cost (number). ")
	b.WriteString("Costs must be realistic, non-zero estimates for the destination; notes should be concise and actionable (reservations, tickets, transit, duration).\n")
	b.WriteString("\nReturn ONLY valid JSON matching this structure, with no surrounding prose:\n")
	fmt.Fprintf(&b, `{
  "destination": %q,
  "startDate": %q,
  "endDate": %q,
  "overview": "One-paragraph summary of the trip",
  "days": [
    {
      "date": "YYYY-MM-DD",
      "activities": [
        {
          "title": "Activity name",
          "time": "HH:MM",
          "location": "Location",
          "notes": "Details",
          "cost": 1000
        }
      ]
    }
  ]
}`, req.Destination, req.StartDate.Format(domain.DateLayout), req.EndDate.Format(domain.DateLayout))

	return b.String()
}
