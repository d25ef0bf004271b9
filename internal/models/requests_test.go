package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateOrderRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateOrderRequest
		wantErr bool
	}{
		{
			"valid single zone",
			CreateOrderRequest{EventID: 1, Items: []OrderItemRequest{
				{ZoneID: 10, IdentityDocuments: []string{"DOC-1", "DOC-2"}},
			}},
			false,
		},
		{
			"item with no documents is allowed",
			CreateOrderRequest{EventID: 1, Items: []OrderItemRequest{{ZoneID: 10}}},
			false,
		},
		{
			"missing event id",
			CreateOrderRequest{Items: []OrderItemRequest{{ZoneID: 10}}},
			true,
		},
		{
			"no items",
			CreateOrderRequest{EventID: 1},
			true,
		},
		{
			"missing zone id",
			CreateOrderRequest{EventID: 1, Items: []OrderItemRequest{{IdentityDocuments: []string{"DOC-1"}}}},
			true,
		},
		{
			"blank document",
			CreateOrderRequest{EventID: 1, Items: []OrderItemRequest{
				{ZoneID: 10, IdentityDocuments: []string{"   "}},
			}},
			true,
		},
		{
			"oversized document",
			CreateOrderRequest{EventID: 1, Items: []OrderItemRequest{
				{ZoneID: 10, IdentityDocuments: []string{strings.Repeat("X", 51)}},
			}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateOrderRequest_TicketCount(t *testing.T) {
	req := CreateOrderRequest{EventID: 1, Items: []OrderItemRequest{
		{ZoneID: 10, IdentityDocuments: []string{"DOC-1", "DOC-2"}},
		{ZoneID: 11},
		{ZoneID: 12, IdentityDocuments: []string{"DOC-3"}},
	}}

	assert.Equal(t, 3, req.TicketCount())
	assert.Equal(t, []int{10, 11, 12}, req.ZoneIDs())
}
