package models

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

// Order represents a client's purchase transaction spanning one or more zones
type Order struct {
	ID          int             `json:"id" db:"id"`
	UserID      int             `json:"user_id" db:"user_id"`
	EventID     int             `json:"event_id" db:"event_id"`
	OrderNumber string          `json:"order_number" db:"order_number"`
	Status      OrderStatus     `json:"status" db:"status"`
	TotalAmount decimal.Decimal `json:"total_amount" db:"total_amount"`
	TicketCount int             `json:"ticket_count" db:"ticket_count"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`

	// Related data
	Items []*OrderLineItem `json:"items,omitempty"`
}

// OrderLineItem represents the portion of an order belonging to one zone. The
// unit price is frozen at order time and never recomputed.
type OrderLineItem struct {
	ID                int             `json:"id" db:"id"`
	OrderID           int             `json:"order_id" db:"order_id"`
	ZoneID            int             `json:"zone_id" db:"zone_id"`
	ZoneName          string          `json:"zone_name" db:"zone_name"`
	Quantity          int             `json:"quantity" db:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price" db:"unit_price"`
	Subtotal          decimal.Decimal `json:"subtotal" db:"subtotal"`
	IdentityDocuments []string        `json:"identity_documents" db:"identity_documents"`
}

// Order number format: ORD-YYYYMMDD-XXXXXX (e.g. ORD-20240101-123456)
var orderNumberRegex = regexp.MustCompile(`^ORD-\d{8}-\d{6}$`)

// Validate validates the order data
func (o *Order) Validate() error {
	if !orderNumberRegex.MatchString(o.OrderNumber) {
		return errors.New("order number format is invalid")
	}

	if o.TotalAmount.IsNegative() {
		return errors.New("total amount cannot be negative")
	}

	if o.TicketCount <= 0 {
		return errors.New("order must contain at least one ticket")
	}

	return validateOrderStatus(o.Status)
}

func validateOrderStatus(status OrderStatus) error {
	switch status {
	case OrderPending, OrderPaid, OrderCancelled:
		return nil
	default:
		return errors.New("invalid order status")
	}
}

// GenerateOrderNumber generates a unique order number
func GenerateOrderNumber() string {
	now := time.Now()
	dateStr := now.Format("20060102")

	max := big.NewInt(1000000)
	randomNum, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fallback to timestamp-based generation if crypto/rand fails
		return fmt.Sprintf("ORD-%s-%06d", dateStr, now.UnixNano()%1000000)
	}

	return fmt.Sprintf("ORD-%s-%06d", dateStr, randomNum.Int64())
}

// IsPending returns true if the order awaits payment
func (o *Order) IsPending() bool {
	return o.Status == OrderPending
}

// IsPaid returns true if the order has been paid
func (o *Order) IsPaid() bool {
	return o.Status == OrderPaid
}

// IsCancelled returns true if the order is cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == OrderCancelled
}

// CanBePaid returns true if the order can transition to paid
func (o *Order) CanBePaid() bool {
	return o.Status == OrderPending
}

// CanBeCancelled returns true if the order can be cancelled
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderPending
}
