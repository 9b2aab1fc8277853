package planner

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validResponse builds a well-formed provider response with the given number
// of days starting at 2024-12-11.
func validResponse(t *testing.T, days int) string {
	t.Helper()

	type activity struct {
		Title    string  `json:"title"`
		Time     string  `json:"time"`
		Location string  `json:"location"`
		Notes    string  `json:"notes"`
		Cost     float64 `json:"cost"`
	}
	type day struct {
		Date       string     `json:"date"`
		Activities []activity `json:"activities"`
	}

	resp := map[string]any{
		"destination": "Paris",
		"startDate":   "2024-12-11",
		"endDate":     "2024-12-18",
		"overview":    "A week in Paris.",
	}
	var ds []day
	for i := 0; i < days; i++ {
		ds = append(ds, day{
			Date: "2024-12-1" + string(rune('1'+i)),
			Activities: []activity{
				{Title: "Louvre", Time: "10:00", Location: "Rue de Rivoli", Notes: "Book ahead", Cost: 22},
			},
		})
	}
	resp["days"] = ds

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(b)
}

func TestParseItinerary_OK(t *testing.T) {
	got, err := parseItinerary(validResponse(t, 8), 8)

	require.NoError(t, err)
	assert.Equal(t, "A week in Paris.", got.Overview)
	require.Len(t, got.Days, 8)
	assert.Equal(t, "Louvre", got.Days[0].Activities[0].Title)
	require.NotNil(t, got.Days[0].Activities[0].Cost)
	assert.Equal(t, 22.0, *got.Days[0].Activities[0].Cost)
}

func TestParseItinerary_FencedJSON(t *testing.T) {
	raw := "```json\n" + validResponse(t, 8) + "\n```"

	got, err := parseItinerary(raw, 8)

	require.NoError(t, err)
	assert.Len(t, got.Days, 8)
}

func TestParseItinerary_NotJSON(t *testing.T) {
	_, err := parseItinerary("Here is your itinerary! Day 1: arrive.", 8)

	require.Error(t, err)
}

func TestParseItinerary_WrongDayCount(t *testing.T) {
	_, err := parseItinerary(validResponse(t, 5), 8)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "5 days, expected 8")
}

// TestParseItinerary_MissingActivityField verifies the strict generated-output
// rules: every activity must carry the full field set, including cost.
func TestParseItinerary_MissingActivityField(t *testing.T) {
	raw := strings.Replace(validResponse(t, 8), `"cost":22`, `"price":22`, 1)

	_, err := parseItinerary(raw, 8)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cost")
}

func TestParseItinerary_EmptyDays(t *testing.T) {
	raw := `{"destination":"Paris","startDate":"2024-12-11","endDate":"2024-12-18","days":[]}`

	_, err := parseItinerary(raw, 8)

	require.Error(t, err)
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.in))
		})
	}
}
