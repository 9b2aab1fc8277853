package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/mpatel-dev/wanderplan/backend/internal/domain"
)

// itineraryResponse is the shape the provider is instructed to return.
// Generated output is held to the strict rules: every activity must carry the
// full field set. Manual edits are validated elsewhere with looser rules.
type itineraryResponse struct {
	Destination string         `json:"destination" validate:"required"`
	StartDate   string         `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string         `json:"endDate" validate:"required,datetime=2006-01-02"`
	Overview    string         `json:"overview"`
	Days        []generatedDay `json:"days" validate:"required,min=1,dive"`
}

type generatedDay struct {
	Date       string               `json:"date" validate:"required,datetime=2006-01-02"`
	Activities []generatedActivity `json:"activities" validate:"required,min=1,dive"`
}

type generatedActivity struct {
	Title    string   `json:"title" validate:"required"`
	Time     string   `json:"time" validate:"required"`
	Location string   `json:"location" validate:"required"`
	Notes    string   `json:"notes" validate:"required"`
	Cost     *float64 `json:"cost" validate:"required"`
}

var responseValidator = validator.New(validator.WithRequiredStructEnabled())

// parseItinerary turns raw provider output into a validated Itinerary.
// It fails closed: non-JSON, a missing required field, or a day count that
// differs from wantDays are all errors — never silently patched.
func parseItinerary(raw string, wantDays int) (Itinerary, error) {
	cleaned := stripCodeFence(raw)

	var resp itineraryResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return Itinerary{}, fmt.Errorf("parse itinerary: %w", err)
	}
	if err := responseValidator.Struct(resp); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return Itinerary{}, fmt.Errorf("itinerary schema: %s is missing or invalid", verrs[0].Namespace())
		}
		return Itinerary{}, fmt.Errorf("itinerary schema: %w", err)
	}
	if len(resp.Days) != wantDays {
		return Itinerary{}, fmt.Errorf("itinerary has %d days, expected %d", len(resp.Days), wantDays)
	}

	days := lo.Map(resp.Days, func(d generatedDay, _ int) domain.Day {
		return domain.Day{
			Date: d.Date,
			Activities: lo.Map(d.Activities, func(a generatedActivity, _ int) domain.Activity {
				return domain.Activity{
					Title:    a.Title,
					Time:     a.Time,
					Location: a.Location,
					Notes:    a.Notes,
					Cost:     a.Cost,
				}
			}),
		}
	})

	return Itinerary{Overview: resp.Overview, Days: days}, nil
}

// stripCodeFence removes a markdown code-fence wrapper (``` or ```json) that
// models often add around JSON output despite instructions not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
