package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Struct tags carry the field
// rules; the tag-name function makes error messages name the JSON field the
// caller actually sent, not the Go struct field.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// TripInput is the ephemeral, user-submitted set of trip parameters.
// It is validated before any prompt is built or record created.
type TripInput struct {
	Destination     string   `json:"destination" validate:"required,min=2"`
	StartDate       string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate         string   `json:"endDate" validate:"required,datetime=2006-01-02"`
	Budget          *float64 `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Travelers       *int     `json:"travelers,omitempty" validate:"omitempty,gte=1"`
	Style           string   `json:"style,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	DisableFallback bool     `json:"disableFallback,omitempty"`
}

// Validate checks the struct rules plus the cross-field date ordering.
// Returns ErrValidation (wrapped with the violated field) on failure.
func (in TripInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fieldError(err)
	}
	start, _ := time.Parse(DateLayout, in.StartDate)
	end, _ := time.Parse(DateLayout, in.EndDate)
	if end.Before(start) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrValidation)
	}
	return nil
}

// Dates returns the parsed start and end dates. Call only after Validate.
func (in TripInput) Dates() (start, end time.Time) {
	start, _ = time.Parse(DateLayout, in.StartDate)
	end, _ = time.Parse(DateLayout, in.EndDate)
	return start, end
}

// ExpenseInput is the user-submitted shape of an expense create or update.
type ExpenseInput struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required,min=1,max=50"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=200"`
}

// Validate checks the struct rules.
// Returns ErrValidation (wrapped with the violated field) on failure.
func (in ExpenseInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fieldError(err)
	}
	return nil
}

// ParsedDate returns the parsed expense date. Call only after Validate.
func (in ExpenseInput) ParsedDate() time.Time {
	t, _ := time.Parse(DateLayout, in.Date)
	return t
}

// fieldError converts a validator error into a wrapped ErrValidation naming
// the first violated field, so handlers can surface a field-level message.
func fieldError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s is missing or invalid", ErrValidation, verrs[0].Field())
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
