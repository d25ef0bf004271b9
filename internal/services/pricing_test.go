package services

import (
	"testing"
	"time"

	"events-marketplace/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolvePrice(t *testing.T) {
	ends := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	preventa := decimal.NewFromFloat(79.90)

	zone := &models.Zone{
		Name:           "Platea",
		Capacity:       500,
		NormalPrice:    decimal.NewFromInt(120),
		PreventaPrice:  &preventa,
		PreventaEndsAt: &ends,
	}

	tests := []struct {
		name string
		at   time.Time
		want decimal.Decimal
	}{
		{"one second before the window closes", ends.Add(-time.Second), preventa},
		{"exactly at the end date", ends, zone.NormalPrice},
		{"one second after the end date", ends.Add(time.Second), zone.NormalPrice},
		{"well inside the window", ends.Add(-30 * 24 * time.Hour), preventa},
		{"long after expiry", ends.Add(90 * 24 * time.Hour), zone.NormalPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePrice(zone, tt.at)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}

	t.Run("zone without preventa always charges the normal rate", func(t *testing.T) {
		plain := &models.Zone{Name: "General", NormalPrice: decimal.NewFromInt(50)}
		got := ResolvePrice(plain, time.Now())
		assert.True(t, got.Equal(plain.NormalPrice))
	})
}
