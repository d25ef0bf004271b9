package services

import (
	"fmt"
	"net/url"

	"events-marketplace/internal/models"
)

// PaymentConfig holds the external payment gateway settings
type PaymentConfig struct {
	CheckoutBaseURL string
	MerchantCode    string
}

// PaymentService builds the redirect handed to the external payment gateway.
// The gateway integration itself (webhooks, settlement) lives outside this
// service; only the redirect construction and the callback state transition
// belong to the marketplace.
type PaymentService struct {
	config PaymentConfig
}

// NewPaymentService creates a new payment service
func NewPaymentService(config PaymentConfig) *PaymentService {
	return &PaymentService{config: config}
}

// RedirectURL builds the checkout URL for a committed order from its order
// number and total amount
func (s *PaymentService) RedirectURL(order *models.Order) string {
	params := url.Values{}
	params.Set("merchant", s.config.MerchantCode)
	params.Set("reference", order.OrderNumber)
	params.Set("amount", order.TotalAmount.StringFixed(2))

	return fmt.Sprintf("%s/checkout?%s", s.config.CheckoutBaseURL, params.Encode())
}
