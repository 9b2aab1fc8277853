package planner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpatel-dev/wanderplan/backend/internal/planner"
)

func TestFallback_OneDayPerDate(t *testing.T) {
	got := planner.Fallback(parisRequest())

	require.Len(t, got.Days, 8)
	assert.Equal(t, "2024-12-11", got.Days[0].Date)
	assert.Equal(t, "2024-12-18", got.Days[7].Date)
}

// TestFallback_TwoFixedActivitiesPerDay verifies the placeholder shape: every
// day carries a daytime explore slot and an evening dining slot with fixed
// times and full field sets.
func TestFallback_TwoFixedActivitiesPerDay(t *testing.T) {
	got := planner.Fallback(parisRequest())

	for _, day := range got.Days {
		require.Len(t, day.Activities, 2)

		explore, dining := day.Activities[0], day.Activities[1]
		assert.Equal(t, "Explore Paris", explore.Title)
		assert.Equal(t, "10:00", explore.Time)
		assert.Equal(t, "Dinner at a local restaurant", dining.Title)
		assert.Equal(t, "19:00", dining.Time)

		for _, a := range day.Activities {
			assert.NotEmpty(t, a.Location)
			assert.NotEmpty(t, a.Notes)
			require.NotNil(t, a.Cost)
			assert.Positive(t, *a.Cost)
		}
	}
}

func TestFallback_AnyDestination(t *testing.T) {
	req := planner.Request{
		Destination: "Ulaanbaatar",
		StartDate:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
	}

	got := planner.Fallback(req)

	require.Len(t, got.Days, 3)
	assert.Equal(t, "Explore Ulaanbaatar", got.Days[0].Activities[0].Title)
	assert.Contains(t, got.Overview, "3-day")
	assert.Contains(t, got.Overview, "Ulaanbaatar")
}

func TestFallback_Deterministic(t *testing.T) {
	assert.Equal(t, planner.Fallback(parisRequest()), planner.Fallback(parisRequest()))
}
