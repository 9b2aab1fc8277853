package domain

import (
	"time"

	"github.com/samber/lo"
)

// DateLayout is the calendar-date format used everywhere in the API:
// trip start/end dates, day dates, and expense dates.
const DateLayout = "2006-01-02"

// InclusiveDayCount returns the number of calendar days between start and end,
// inclusive of both endpoints. The computation truncates both values to whole
// days in UTC, so time-of-day and timezone offsets never shift the count
// (2024-12-11 through 2024-12-18 is 8 days). Returns 0 when end precedes start.
func InclusiveDayCount(start, end time.Time) int {
	s := truncateToDay(start)
	e := truncateToDay(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// DateStrings returns every calendar date from start through end, inclusive,
// formatted with DateLayout. Returns nil when end precedes start.
func DateStrings(start, end time.Time) []string {
	n := InclusiveDayCount(start, end)
	if n == 0 {
		return nil
	}
	first := truncateToDay(start)
	return lo.Times(n, func(i int) string {
		return first.AddDate(0, 0, i).Format(DateLayout)
	})
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
