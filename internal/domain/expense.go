package domain

import (
	"time"

	"github.com/google/uuid"
)

// Expense is a single logged expense, scoped to the owner who created it.
type Expense struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     string    `json:"-"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
