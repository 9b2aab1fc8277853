// Package domain contains the core data types for the WanderPlan application.
// This package has zero HTTP or storage dependencies and is imported by every
// other internal package (repo, service, planner, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a single planned activity within a day.
// Activities carry no identity of their own — they are addressed purely by
// their position inside a day's ordered activity list.
type Activity struct {
	Title    string   `json:"title"`
	Time     string   `json:"time,omitempty"` // "HH:MM", optional
	Location string   `json:"location,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Cost     *float64 `json:"cost,omitempty"`
}

// Day groups the activities planned for one calendar date.
// The activity order is meaningful: days are displayed in sequence and
// activities are not independently sortable.
type Day struct {
	Date       string     `json:"date"` // "YYYY-MM-DD"
	Activities []Activity `json:"activities"`
}

// Trip is the top-level aggregate: one persisted document per trip, with the
// full day/activity structure embedded. A trip is only ever visible to the
// owner identifier that created it.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     string    `json:"-"` // opaque identifier from the auth layer
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Budget      *float64  `json:"budget,omitempty"`
	Travelers   *int      `json:"travelers,omitempty"`
	Style       string    `json:"style,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Overview    string    `json:"overview,omitempty"`
	Days        []Day     `json:"days"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ActivityPatch carries the replacement fields for a single activity edit.
// Title is mandatory on every edit; the pointer fields are overwritten only
// when non-nil, so an omitted field leaves the stored value untouched.
type ActivityPatch struct {
	Title    string
	Time     *string
	Location *string
	Notes    *string
	Cost     *float64
}

// Apply overwrites a's fields with the values carried by the patch.
func (p ActivityPatch) Apply(a *Activity) {
	a.Title = p.Title
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	if p.Cost != nil {
		a.Cost = p.Cost
	}
}
