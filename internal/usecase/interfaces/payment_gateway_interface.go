package interfaces

import (
	"context"
	"encoding/json"

	"booking_payments/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

// IRegionalGateway abstracts Razorpay order creation.
//
// The returned order is the provider JSON verbatim; callers echo it to the client.
type IRegionalGateway interface {
	CreateOrder(ctx context.Context, req entities.RegionalOrderRequest) (json.RawMessage, error)
}

// ICheckoutGateway abstracts Stripe hosted checkout sessions.
type ICheckoutGateway interface {
	CreateSession(ctx context.Context, in entities.CheckoutSessionInput) (sessionID string, err error)
}

// IWalletGateway abstracts the PayPal v2 orders API. Both calls need a bearer
// token obtained from an ITokenBroker.
type IWalletGateway interface {
	CreateOrder(ctx context.Context, accessToken string, req entities.WalletOrderRequest) (entities.WalletOrder, error)
	CaptureOrder(ctx context.Context, accessToken string, orderID string) (json.RawMessage, error)
}
