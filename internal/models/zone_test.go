package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestZone_Available(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		purchased int
		want      int
	}{
		{"untouched zone", 100, 0, 100},
		{"partially sold", 100, 37, 63},
		{"sold out", 100, 100, 0},
		{"over capacity clamps to zero", 100, 105, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone := &Zone{Capacity: tt.capacity, PurchasedCount: tt.purchased}
			assert.Equal(t, tt.want, zone.Available())
		})
	}
}

func TestZone_IsSoldOut(t *testing.T) {
	assert.False(t, (&Zone{Capacity: 10, PurchasedCount: 9}).IsSoldOut())
	assert.True(t, (&Zone{Capacity: 10, PurchasedCount: 10}).IsSoldOut())
}

func TestZone_HasActivePreventa(t *testing.T) {
	ends := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	price := decimal.NewFromInt(80)

	zone := &Zone{NormalPrice: decimal.NewFromInt(120), PreventaPrice: &price, PreventaEndsAt: &ends}

	assert.True(t, zone.HasActivePreventa(ends.Add(-time.Second)))
	assert.False(t, zone.HasActivePreventa(ends), "the end instant itself is outside the window")
	assert.False(t, zone.HasActivePreventa(ends.Add(time.Second)))

	plain := &Zone{NormalPrice: decimal.NewFromInt(120)}
	assert.False(t, plain.HasActivePreventa(time.Now()))
}

func TestZoneCreateRequest_Validate(t *testing.T) {
	ends := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	price := decimal.NewFromInt(80)
	negative := decimal.NewFromInt(-1)

	valid := ZoneCreateRequest{Name: "VIP", Capacity: 50, NormalPrice: decimal.NewFromInt(150)}

	tests := []struct {
		name    string
		mutate  func(*ZoneCreateRequest)
		wantErr string
	}{
		{"valid without preventa", func(r *ZoneCreateRequest) {}, ""},
		{"valid with preventa", func(r *ZoneCreateRequest) {
			r.PreventaPrice = &price
			r.PreventaEndsAt = &ends
		}, ""},
		{"empty name", func(r *ZoneCreateRequest) { r.Name = "  " }, "zone name is required"},
		{"zero capacity", func(r *ZoneCreateRequest) { r.Capacity = 0 }, "zone capacity must be greater than 0"},
		{"negative price", func(r *ZoneCreateRequest) { r.NormalPrice = negative }, "zone price cannot be negative"},
		{"preventa price without end date", func(r *ZoneCreateRequest) {
			r.PreventaPrice = &price
		}, "preventa price and end date must be set together"},
		{"preventa end date without price", func(r *ZoneCreateRequest) {
			r.PreventaEndsAt = &ends
		}, "preventa price and end date must be set together"},
		{"negative preventa price", func(r *ZoneCreateRequest) {
			r.PreventaPrice = &negative
			r.PreventaEndsAt = &ends
		}, "preventa price cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}
