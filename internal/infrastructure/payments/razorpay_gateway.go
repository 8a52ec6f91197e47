package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"booking_payments/internal/config"
	"booking_payments/internal/domain/entities"
	"booking_payments/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

const razorpayOrdersPath = "/v1/orders"

type razorpayOrderRequest struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Receipt        string `json:"receipt"`
	PaymentCapture int    `json:"payment_capture"`
}

// RazorpayGateway talks to the Razorpay Orders API with key-id/secret Basic auth.
type RazorpayGateway struct {
	client  *resty.Client
	baseURL string
	creds   config.Razorpay
}

var _ interfaces.IRegionalGateway = (*RazorpayGateway)(nil)

func NewRazorpayGateway(creds config.Razorpay, client *resty.Client) *RazorpayGateway {
	if !creds.Configured() {
		log.Printf("[payment][razorpay][gateway] missing RAZORPAY_KEY_ID/RAZORPAY_KEY_SECRET; order creation will fail")
	}
	baseURL := creds.BaseURL
	if baseURL == "" {
		baseURL = config.RazorpayDefaultURL
	}
	return &RazorpayGateway{client: client, baseURL: baseURL, creds: creds}
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, req entities.RegionalOrderRequest) (json.RawMessage, error) {
	if !g.creds.Configured() {
		return nil, entities.ErrCredentialsMissing
	}
	log.Printf("[payment][razorpay][gateway] create start receipt=%s amount_minor=%d currency=%s", req.Receipt, req.AmountMinor, req.Currency)

	body := razorpayOrderRequest{
		Amount:   req.AmountMinor,
		Currency: req.Currency,
		Receipt:  req.Receipt,
	}
	if req.AutoCapture {
		body.PaymentCapture = 1
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetBasicAuth(g.creds.KeyID, g.creds.KeySecret).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(g.baseURL + razorpayOrdersPath)
	if err != nil {
		log.Printf("[payment][razorpay][gateway] create transport failed err=%v", err)
		return nil, entities.NewProviderTransportError(entities.ErrProviderRequestFailed, entities.ProviderRazorpay, err)
	}
	if !resp.IsSuccess() {
		log.Printf("[payment][razorpay][gateway] create rejected status=%d", resp.StatusCode())
		return nil, entities.NewProviderHTTPError(entities.ErrProviderRequestFailed, entities.ProviderRazorpay, resp.StatusCode(), resp.Body())
	}

	order := resp.Body()
	if !json.Valid(order) {
		log.Printf("[payment][razorpay][gateway] create returned non-json body status=%d", resp.StatusCode())
		return nil, &entities.ProviderError{
			Kind:       entities.ErrProviderRequestFailed,
			Provider:   entities.ProviderRazorpay,
			StatusCode: resp.StatusCode(),
			Body:       order,
			Err:        errors.New("order response is not valid json"),
		}
	}
	log.Printf("[payment][razorpay][gateway] create success receipt=%s", req.Receipt)
	return json.RawMessage(order), nil
}
