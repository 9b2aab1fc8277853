package planner

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/mpatel-dev/wanderplan/backend/internal/domain"
)

// Fallback times and costs are fixed so the placeholder itinerary is fully
// deterministic for a given date range.
const (
	fallbackExploreTime = "10:00"
	fallbackDiningTime  = "19:00"
	fallbackExploreCost = 200.0
	fallbackDiningCost  = 800.0
)

// Fallback synthesizes the deterministic placeholder itinerary: one entry per
// required date, each with the same two activities — a daytime explore slot
// and an evening dining slot. It never fails and never produces a day count
// different from the inclusive date difference.
func Fallback(req Request) Itinerary {
	dates := domain.DateStrings(req.StartDate, req.EndDate)

	days := lo.Map(dates, func(date string, _ int) domain.Day {
		explore := fallbackExploreCost
		dining := fallbackDiningCost
		return domain.Day{
			Date: date,
			Activities: []domain.Activity{
				{
					Title:    fmt.Sprintf("Explore %s", req.Destination),
					Time:     fallbackExploreTime,
					Location: "City center",
					Notes:    "Self-guided walk around the main sights. Replace with specific plans once you have them.",
					Cost:     &explore,
				},
				{
					Title:    "Dinner at a local restaurant",
					Time:     fallbackDiningTime,
					Location: "Near your accommodation",
					Notes:    "Try a regional specialty; reserve ahead for popular spots.",
					Cost:     &dining,
				},
			},
		}
	})

	overview := fmt.Sprintf(
		"A %d-day placeholder itinerary for %s. Automatic planning was unavailable, so each day has a morning explore slot and an evening dining slot — edit the activities to build out your trip.",
		len(dates), req.Destination,
	)

	return Itinerary{Overview: overview, Days: days}
}
