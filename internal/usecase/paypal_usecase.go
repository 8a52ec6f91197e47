package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"booking_payments/internal/domain/entities"
	"booking_payments/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrMissingOrderID = errors.New("missing order id")

//go:generate mockgen -source=paypal_usecase.go -destination=../adapter/http/handlers/mocks/paypal_usecase_mock.go -package=mocks

// IPayPalUseCase covers the wallet gateway's two-step create/capture protocol.
type IPayPalUseCase interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency string) (entities.WalletOrder, error)
	CaptureOrder(ctx context.Context, orderID string) (json.RawMessage, error)
}

type PayPalUseCase struct {
	broker  interfaces.ITokenBroker
	gateway interfaces.IWalletGateway
}

var _ IPayPalUseCase = (*PayPalUseCase)(nil)

func NewPayPalUseCase(broker interfaces.ITokenBroker, gateway interfaces.IWalletGateway) *PayPalUseCase {
	return &PayPalUseCase{broker: broker, gateway: gateway}
}

func (u *PayPalUseCase) CreateOrder(ctx context.Context, amount decimal.Decimal, currency string) (entities.WalletOrder, error) {
	log.Printf("[payment][paypal][usecase] create-order start amount=%s currency=%q", amount, currency)
	if !entities.IsValidAmount(amount) {
		log.Printf("[payment][paypal][usecase] invalid amount=%s", amount)
		return entities.WalletOrder{}, ErrInvalidAmount
	}
	if u.broker == nil || u.gateway == nil {
		log.Printf("[payment][paypal][usecase] gateway not configured")
		return entities.WalletOrder{}, errors.New("paypal gateway not configured")
	}

	token, err := u.broker.FetchAccessToken(ctx)
	if err != nil {
		log.Printf("[payment][paypal][usecase] token fetch failed err=%v", err)
		return entities.WalletOrder{}, err
	}

	// PayPal takes the major-unit decimal string, not minor units.
	req := entities.WalletOrderRequest{
		Currency: entities.NormalizeCurrency(currency, entities.DefaultPayPalCurrency),
		Value:    amount.String(),
	}
	order, err := u.gateway.CreateOrder(ctx, token, req)
	if err != nil {
		log.Printf("[payment][paypal][usecase] create-order failed err=%v", err)
		u.dropRejectedToken(ctx, err)
		return entities.WalletOrder{}, err
	}
	log.Printf("[payment][paypal][usecase] create-order success order_id=%s value=%s currency=%s", order.OrderID, req.Value, req.Currency)
	return order, nil
}

func (u *PayPalUseCase) CaptureOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	orderID = strings.TrimSpace(orderID)
	log.Printf("[payment][paypal][usecase] capture start order_id=%q", orderID)
	if orderID == "" {
		log.Printf("[payment][paypal][usecase] capture rejected: missing order id")
		return nil, ErrMissingOrderID
	}
	if u.broker == nil || u.gateway == nil {
		log.Printf("[payment][paypal][usecase] gateway not configured")
		return nil, errors.New("paypal gateway not configured")
	}

	token, err := u.broker.FetchAccessToken(ctx)
	if err != nil {
		log.Printf("[payment][paypal][usecase] token fetch failed order_id=%s err=%v", orderID, err)
		return nil, err
	}

	capture, err := u.gateway.CaptureOrder(ctx, token, orderID)
	if err != nil {
		log.Printf("[payment][paypal][usecase] capture failed order_id=%s err=%v", orderID, err)
		u.dropRejectedToken(ctx, err)
		return nil, err
	}
	log.Printf("[payment][paypal][usecase] capture success order_id=%s", orderID)
	return capture, nil
}

// dropRejectedToken invalidates a cached token PayPal no longer accepts so the
// next operation exchanges a fresh one. The failed call itself is not retried.
func (u *PayPalUseCase) dropRejectedToken(ctx context.Context, err error) {
	var providerErr *entities.ProviderError
	if !errors.As(err, &providerErr) || providerErr.StatusCode != http.StatusUnauthorized {
		return
	}
	if invErr := u.broker.InvalidateAccessToken(ctx); invErr != nil {
		log.Printf("[payment][paypal][usecase] token invalidation failed err=%v", invErr)
	}
}
