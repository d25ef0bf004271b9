package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"events-marketplace/internal/middleware"
	"events-marketplace/internal/models"
	"events-marketplace/internal/monitoring"
	"events-marketplace/internal/services"

	"github.com/go-chi/chi/v5"
)

// PurchaseServiceInterface is the purchase workflow consumed by the handler
type PurchaseServiceInterface interface {
	CreateOrder(ctx context.Context, clientID int, req *models.CreateOrderRequest) (*services.PurchaseResult, error)
	GetOrder(ctx context.Context, orderID, clientID int) (*models.Order, error)
	ListOrders(ctx context.Context, clientID, limit, offset int) ([]*models.Order, int, error)
	ConfirmPayment(ctx context.Context, orderID int, paymentRef string) error
}

// OrderHandler handles ticket purchase and order retrieval
type OrderHandler struct {
	purchases PurchaseServiceInterface
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(purchases PurchaseServiceInterface) *OrderHandler {
	return &OrderHandler{purchases: purchases}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req models.CreateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		monitoring.RecordOrderFailure("bad_request")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.purchases.CreateOrder(r.Context(), user.ID, &req)
	if err != nil {
		monitoring.RecordOrderFailure(orderFailureReason(err))
		var stockErr *models.InsufficientStockError
		if errors.As(err, &stockErr) {
			monitoring.RecordStockConflict()
		}
		writeError(w, err)
		return
	}

	monitoring.RecordOrderCreated(result.Order.TicketCount)
	writeJSON(w, http.StatusCreated, result)
}

// GetOrder handles GET /api/orders/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	orderID, err := strconv.Atoi(chi.URLParam(r, "orderId"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.purchases.GetOrder(r.Context(), orderID, user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	limit, offset := pagination(r)

	orders, total, err := h.purchases.ListOrders(r.Context(), user.ID, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"total":  total,
	})
}

// paymentCallbackRequest is the payload the payment gateway posts back after
// a checkout completes
type paymentCallbackRequest struct {
	OrderID   int    `json:"order_id"`
	Reference string `json:"reference"`
}

// PaymentCallback handles POST /api/payments/callback
func (h *OrderHandler) PaymentCallback(w http.ResponseWriter, r *http.Request) {
	var req paymentCallbackRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if req.OrderID <= 0 || req.Reference == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "order id and reference are required"})
		return
	}

	if err := h.purchases.ConfirmPayment(r.Context(), req.OrderID, req.Reference); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "confirmed"})
}

func orderFailureReason(err error) string {
	var invalidZone *models.InvalidZoneError
	var stockErr *models.InsufficientStockError

	switch {
	case errors.As(err, &stockErr):
		return "insufficient_stock"
	case errors.As(err, &invalidZone):
		return "invalid_zone"
	case errors.Is(err, models.ErrClientNotFound):
		return "client_not_found"
	case errors.Is(err, models.ErrEventNotFound):
		return "event_not_found"
	case errors.Is(err, models.ErrEventNotAvailable):
		return "event_not_available"
	case errors.Is(err, models.ErrInvalidInput):
		return "bad_request"
	default:
		return "internal"
	}
}
