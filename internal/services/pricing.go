package services

import (
	"time"

	"events-marketplace/internal/models"

	"github.com/shopspring/decimal"
)

// ResolvePrice determines the unit price for a zone at a given instant. While
// the preventa window is open (its end date strictly after the instant) the
// preventa price applies; afterwards the zone silently falls back to the
// normal rate. Pure function of the zone snapshot and the instant.
func ResolvePrice(zone *models.Zone, at time.Time) decimal.Decimal {
	if zone.HasActivePreventa(at) {
		return *zone.PreventaPrice
	}
	return zone.NormalPrice
}
