package response

import (
	"encoding/json"

	"booking_payments/internal/domain/entities"
)

type HealthResponse struct {
	OK bool `json:"ok" example:"true"`
}

type VerifyPaymentResponse struct {
	Success bool `json:"success" example:"true"`
}

type StripeSessionResponse struct {
	ID string `json:"id" example:"cs_test_a1b2c3"`
}

type PayPalOrderResponse struct {
	OrderID string          `json:"orderId" example:"5O190127TN364715T"`
	Order   json.RawMessage `json:"order" swaggertype:"object"`
}

type PayPalCaptureResponse struct {
	Success bool            `json:"success" example:"true"`
	Capture json.RawMessage `json:"capture" swaggertype:"object"`
}

func FromWalletOrder(o entities.WalletOrder) PayPalOrderResponse {
	return PayPalOrderResponse{OrderID: o.OrderID, Order: o.Order}
}

func FromCapture(capture json.RawMessage) PayPalCaptureResponse {
	return PayPalCaptureResponse{Success: true, Capture: capture}
}
