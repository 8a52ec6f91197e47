package request

import (
	"encoding/json"
	"strings"

	"booking_payments/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// AmountRequest is the body of the order-creation routes. Amount accepts a
// JSON number or a numeric string; a missing or null amount stays nil.
type AmountRequest struct {
	Amount   *decimal.Decimal `json:"amount" swaggertype:"number" example:"500"`
	Currency string           `json:"currency" example:"INR"`
}

func (r AmountRequest) ResolveAmount() decimal.Decimal {
	return resolveAmount(r.Amount)
}

// RazorpayCheckoutResult is what Razorpay Checkout hands the client after a
// successful payment.
type RazorpayCheckoutResult struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}

type RazorpayVerifyRequest struct {
	Razor   *RazorpayCheckoutResult `json:"razor"`
	Booking json.RawMessage         `json:"booking" swaggertype:"object"`
}

func (r RazorpayVerifyRequest) ToVerificationPayload() entities.VerificationPayload {
	p := entities.VerificationPayload{Booking: r.Booking}
	if r.Razor != nil {
		p.PaymentID = r.Razor.PaymentID
		p.OrderID = r.Razor.OrderID
		p.Signature = r.Razor.Signature
	}
	return p
}

type StripeSessionRequest struct {
	Booking  json.RawMessage  `json:"booking" swaggertype:"object"`
	Amount   *decimal.Decimal `json:"amount" swaggertype:"number" example:"100.5"`
	Currency string           `json:"currency" example:"INR"`
}

func (r StripeSessionRequest) ToCheckoutRequest(origin string) entities.CheckoutRequest {
	return entities.CheckoutRequest{
		Booking:  r.Booking,
		Amount:   resolveAmount(r.Amount),
		Currency: r.Currency,
		Origin:   strings.TrimSpace(origin),
	}
}

type PayPalCaptureRequest struct {
	OrderID string `json:"orderId" example:"5O190127TN364715T"`
}

func resolveAmount(amount *decimal.Decimal) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return *amount
}
