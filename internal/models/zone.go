package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Zone represents a priced, capacity-bounded section of an event's tickets.
// Capacity is immutable after creation; PurchasedCount is the only field that
// changes during the event's life and only through atomic conditional updates.
type Zone struct {
	ID             int             `json:"id" db:"id"`
	EventID        int             `json:"event_id" db:"event_id"`
	Name           string          `json:"name" db:"name"`
	Capacity       int             `json:"capacity" db:"capacity"`
	PurchasedCount int             `json:"purchased_count" db:"purchased_count"`
	NormalPrice    decimal.Decimal `json:"normal_price" db:"normal_price"`
	PreventaPrice  *decimal.Decimal `json:"preventa_price,omitempty" db:"preventa_price"`
	PreventaEndsAt *time.Time      `json:"preventa_ends_at,omitempty" db:"preventa_ends_at"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

// ZoneCreateRequest represents the data needed to add a zone to an event
type ZoneCreateRequest struct {
	Name           string           `json:"name"`
	Capacity       int              `json:"capacity"`
	NormalPrice    decimal.Decimal  `json:"normal_price"`
	PreventaPrice  *decimal.Decimal `json:"preventa_price,omitempty"`
	PreventaEndsAt *time.Time       `json:"preventa_ends_at,omitempty"`
}

// Validate validates zone creation data
func (req *ZoneCreateRequest) Validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("zone name is required")
	}

	if len(req.Name) > 100 {
		return errors.New("zone name must be less than 100 characters")
	}

	if req.Capacity <= 0 {
		return errors.New("zone capacity must be greater than 0")
	}

	if req.Capacity > 100000 {
		return errors.New("zone capacity cannot exceed 100,000")
	}

	if req.NormalPrice.IsNegative() {
		return errors.New("zone price cannot be negative")
	}

	// Preventa pricing is optional, but must come with its expiry
	if (req.PreventaPrice == nil) != (req.PreventaEndsAt == nil) {
		return errors.New("preventa price and end date must be set together")
	}

	if req.PreventaPrice != nil && req.PreventaPrice.IsNegative() {
		return errors.New("preventa price cannot be negative")
	}

	return nil
}

// Available returns the number of tickets still purchasable in the zone
func (z *Zone) Available() int {
	available := z.Capacity - z.PurchasedCount
	if available < 0 {
		return 0
	}
	return available
}

// IsSoldOut returns true if no capacity remains
func (z *Zone) IsSoldOut() bool {
	return z.PurchasedCount >= z.Capacity
}

// HasActivePreventa returns true if a preventa rate applies at the given
// instant. A preventa whose end date has passed falls back to the normal rate
// without error.
func (z *Zone) HasActivePreventa(at time.Time) bool {
	return z.PreventaPrice != nil && z.PreventaEndsAt != nil && z.PreventaEndsAt.After(at)
}
