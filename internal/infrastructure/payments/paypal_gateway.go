package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/url"

	"booking_payments/internal/config"
	"booking_payments/internal/domain/entities"
	"booking_payments/internal/usecase/interfaces"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	paypalOrdersPath    = "/v2/checkout/orders"
	paypalIntentCapture = "CAPTURE"
)

type paypalAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type paypalPurchaseUnit struct {
	Amount paypalAmount `json:"amount"`
}

type paypalOrderRequest struct {
	Intent        string               `json:"intent"`
	PurchaseUnits []paypalPurchaseUnit `json:"purchase_units"`
}

type paypalOrderResponse struct {
	ID string `json:"id"`
}

// PayPalGateway calls the PayPal v2 Orders API with a caller-supplied bearer token.
type PayPalGateway struct {
	client  *resty.Client
	baseURL string
}

var _ interfaces.IWalletGateway = (*PayPalGateway)(nil)

func NewPayPalGateway(creds config.PayPal, client *resty.Client) *PayPalGateway {
	return &PayPalGateway{client: client, baseURL: creds.ResolvedBaseURL()}
}

func (g *PayPalGateway) CreateOrder(ctx context.Context, accessToken string, req entities.WalletOrderRequest) (entities.WalletOrder, error) {
	log.Printf("[payment][paypal][gateway] create start value=%s currency=%s", req.Value, req.Currency)

	body := paypalOrderRequest{
		Intent: paypalIntentCapture,
		PurchaseUnits: []paypalPurchaseUnit{
			{Amount: paypalAmount{CurrencyCode: req.Currency, Value: req.Value}},
		},
	}

	raw, err := g.post(ctx, accessToken, paypalOrdersPath, body)
	if err != nil {
		return entities.WalletOrder{}, err
	}

	var parsed paypalOrderResponse
	if err := sonic.Unmarshal(raw, &parsed); err != nil || parsed.ID == "" {
		log.Printf("[payment][paypal][gateway] create returned no order id")
		return entities.WalletOrder{}, &entities.ProviderError{
			Kind:     entities.ErrProviderRequestFailed,
			Provider: entities.ProviderPayPal,
			Body:     raw,
			Err:      errors.New("order response has no id"),
		}
	}
	log.Printf("[payment][paypal][gateway] create success order_id=%s", parsed.ID)
	return entities.WalletOrder{OrderID: parsed.ID, Order: raw}, nil
}

func (g *PayPalGateway) CaptureOrder(ctx context.Context, accessToken string, orderID string) (json.RawMessage, error) {
	log.Printf("[payment][paypal][gateway] capture start order_id=%s", orderID)

	raw, err := g.post(ctx, accessToken, paypalOrdersPath+"/"+url.PathEscape(orderID)+"/capture", nil)
	if err != nil {
		return nil, err
	}
	log.Printf("[payment][paypal][gateway] capture success order_id=%s", orderID)
	return raw, nil
}

func (g *PayPalGateway) post(ctx context.Context, accessToken, path string, body any) (json.RawMessage, error) {
	r := g.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetHeader("Content-Type", "application/json").
		SetHeader("PayPal-Request-Id", uuid.NewString())
	if body != nil {
		r.SetBody(body)
	}

	resp, err := r.Post(g.baseURL + path)
	if err != nil {
		log.Printf("[payment][paypal][gateway] transport failed path=%s err=%v", path, err)
		return nil, entities.NewProviderTransportError(entities.ErrProviderRequestFailed, entities.ProviderPayPal, err)
	}
	if !resp.IsSuccess() {
		log.Printf("[payment][paypal][gateway] rejected path=%s status=%d", path, resp.StatusCode())
		return nil, entities.NewProviderHTTPError(entities.ErrProviderRequestFailed, entities.ProviderPayPal, resp.StatusCode(), resp.Body())
	}

	raw := resp.Body()
	if !json.Valid(raw) {
		return nil, &entities.ProviderError{
			Kind:       entities.ErrProviderRequestFailed,
			Provider:   entities.ProviderPayPal,
			StatusCode: resp.StatusCode(),
			Body:       raw,
			Err:        errors.New("response is not valid json"),
		}
	}
	return json.RawMessage(raw), nil
}
