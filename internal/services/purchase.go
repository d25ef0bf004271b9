package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"events-marketplace/internal/models"

	"github.com/shopspring/decimal"
)

// PaymentRedirector builds the external payment gateway redirect for a
// committed order
type PaymentRedirector interface {
	RedirectURL(order *models.Order) string
}

// PurchaseResult is the outcome of a successful purchase: the committed order
// and the redirect handed to the payment gateway
type PurchaseResult struct {
	Order      *models.Order `json:"order"`
	PaymentURL string        `json:"payment_url"`
}

// PurchaseService handles the order creation workflow: validation, pricing,
// stock reservation and the atomic commit
type PurchaseService struct {
	userRepo  UserRepository
	eventRepo EventRepository
	zoneRepo  ZoneRepository
	orderRepo OrderRepository
	payments  PaymentRedirector
	now       func() time.Time
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	userRepo UserRepository,
	eventRepo EventRepository,
	zoneRepo ZoneRepository,
	orderRepo OrderRepository,
	payments PaymentRedirector,
) *PurchaseService {
	return &PurchaseService{
		userRepo:  userRepo,
		eventRepo: eventRepo,
		zoneRepo:  zoneRepo,
		orderRepo: orderRepo,
		payments:  payments,
		now:       time.Now,
	}
}

// CreateOrder runs the full purchase workflow for a client. Validation is
// fail-fast; nothing is persisted until every requested zone passes the
// optimistic stock check, and the final commit re-validates capacity under
// the storage layer's conditional update.
func (s *PurchaseService) CreateOrder(ctx context.Context, clientID int, req *models.CreateOrderRequest) (*PurchaseResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err)
	}

	user, err := s.userRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to load client: %w", err)
	}
	if !user.CanPurchase() {
		return nil, models.ErrClientNotFound
	}

	event, err := s.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if !event.CanAcceptOrders() {
		return nil, models.ErrEventNotAvailable
	}

	// Resolve every referenced zone up front. A single unresolvable id fails
	// the whole request before any stock is touched.
	zones, err := s.zoneRepo.GetByIDsForEvent(ctx, event.ID, req.ZoneIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to load zones: %w", err)
	}
	for _, item := range req.Items {
		if _, ok := zones[item.ZoneID]; !ok {
			return nil, &models.InvalidZoneError{ZoneID: item.ZoneID, EventID: event.ID}
		}
	}

	ticketCount := req.TicketCount()
	if ticketCount == 0 {
		return nil, fmt.Errorf("%w: order contains no tickets", models.ErrInvalidInput)
	}

	items, totalAmount, err := s.assembleLineItems(req, zones, s.now())
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:      user.ID,
		EventID:     event.ID,
		OrderNumber: models.GenerateOrderNumber(),
		Status:      models.OrderPending,
		TotalAmount: totalAmount,
		TicketCount: ticketCount,
	}

	persisted, err := s.orderRepo.CreateWithItems(ctx, order, items)
	if err != nil {
		return nil, err
	}

	return &PurchaseResult{
		Order:      persisted,
		PaymentURL: s.payments.RedirectURL(persisted),
	}, nil
}

// assembleLineItems freezes unit prices and performs the optimistic stock
// check against the zone snapshots. Items with no identity documents carry
// zero quantity and are skipped without error. The reservations made here
// live only in memory; the durable increment happens inside the commit.
func (s *PurchaseService) assembleLineItems(
	req *models.CreateOrderRequest,
	zones map[int]*models.Zone,
	at time.Time,
) ([]*models.OrderLineItem, decimal.Decimal, error) {
	var items []*models.OrderLineItem
	totalAmount := decimal.Zero
	reserved := make(map[int]int)

	for _, item := range req.Items {
		quantity := len(item.IdentityDocuments)
		if quantity == 0 {
			continue
		}

		zone := zones[item.ZoneID]
		available := zone.Available() - reserved[zone.ID]
		if quantity > available {
			return nil, decimal.Zero, &models.InsufficientStockError{
				ZoneName:  zone.Name,
				Requested: quantity,
				Available: available,
			}
		}
		reserved[zone.ID] += quantity

		unitPrice := ResolvePrice(zone, at)
		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

		items = append(items, &models.OrderLineItem{
			ZoneID:            zone.ID,
			ZoneName:          zone.Name,
			Quantity:          quantity,
			UnitPrice:         unitPrice,
			Subtotal:          subtotal,
			IdentityDocuments: item.IdentityDocuments,
		})

		totalAmount = totalAmount.Add(subtotal)
	}

	return items, totalAmount, nil
}

// GetOrder retrieves an order with its line items, enforcing ownership.
// Requesting another client's order fails with ErrForbidden.
func (s *PurchaseService) GetOrder(ctx context.Context, orderID, clientID int) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != clientID {
		return nil, models.ErrForbidden
	}

	return order, nil
}

// ListOrders retrieves a client's own orders
func (s *PurchaseService) ListOrders(ctx context.Context, clientID, limit, offset int) ([]*models.Order, int, error) {
	return s.orderRepo.ListByUser(ctx, clientID, limit, offset)
}

// ConfirmPayment marks a pending order paid. Called by the payment gateway
// callback; the gateway itself is an external collaborator.
func (s *PurchaseService) ConfirmPayment(ctx context.Context, orderID int, paymentRef string) error {
	return s.orderRepo.MarkPaid(ctx, orderID, paymentRef)
}
