package models

import (
	"errors"
	"fmt"
	"strings"
)

// OrderItemRequest is one zone's portion of a purchase request. One identity
// document is supplied per ticket holder; the document count is the quantity.
type OrderItemRequest struct {
	ZoneID            int      `json:"zone_id"`
	IdentityDocuments []string `json:"identity_documents"`
}

// CreateOrderRequest is the inbound purchase request for an event
type CreateOrderRequest struct {
	EventID int                `json:"event_id"`
	Items   []OrderItemRequest `json:"items"`
}

// Validate validates the shape of a purchase request. Items with an empty
// document list are allowed here; the purchase workflow skips them.
func (req *CreateOrderRequest) Validate() error {
	if req.EventID <= 0 {
		return errors.New("event id is required")
	}

	if len(req.Items) == 0 {
		return errors.New("at least one zone item is required")
	}

	for i, item := range req.Items {
		if item.ZoneID <= 0 {
			return fmt.Errorf("item %d: zone id is required", i)
		}

		for _, doc := range item.IdentityDocuments {
			if strings.TrimSpace(doc) == "" {
				return fmt.Errorf("item %d: identity documents cannot be blank", i)
			}
			if len(doc) > 50 {
				return fmt.Errorf("item %d: identity documents must be less than 50 characters", i)
			}
		}
	}

	return nil
}

// TicketCount returns the total number of tickets the request asks for
func (req *CreateOrderRequest) TicketCount() int {
	count := 0
	for _, item := range req.Items {
		count += len(item.IdentityDocuments)
	}
	return count
}

// ZoneIDs returns every zone id referenced by the request, in request order
func (req *CreateOrderRequest) ZoneIDs() []int {
	ids := make([]int, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ZoneID)
	}
	return ids
}
