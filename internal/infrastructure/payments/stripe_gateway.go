package payments

import (
	"context"
	"errors"
	"log"
	"net/http"

	"booking_payments/internal/config"
	"booking_payments/internal/domain/entities"
	"booking_payments/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// StripeGateway creates Checkout sessions through the official SDK. Each
// gateway owns its backend so the API key never touches stripe.Key.
type StripeGateway struct {
	sessions *session.Client
}

var _ interfaces.ICheckoutGateway = (*StripeGateway)(nil)

func NewStripeGateway(creds config.Stripe, httpClient *http.Client) *StripeGateway {
	if !creds.Configured() {
		log.Printf("[payment][stripe][gateway] missing STRIPE_SECRET_KEY; session creation will fail")
		return &StripeGateway{}
	}

	backendCfg := &stripe.BackendConfig{
		HTTPClient:        httpClient,
		MaxNetworkRetries: stripe.Int64(0),
	}
	if creds.BaseURL != "" {
		backendCfg.URL = stripe.String(creds.BaseURL)
	}
	log.Printf("[payment][stripe][gateway] Stripe client initialized")

	return &StripeGateway{
		sessions: &session.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg),
			Key: creds.SecretKey,
		},
	}
}

func (g *StripeGateway) CreateSession(ctx context.Context, in entities.CheckoutSessionInput) (string, error) {
	if g == nil || g.sessions == nil {
		return "", entities.ErrCredentialsMissing
	}
	log.Printf("[payment][stripe][gateway] create start amount_minor=%d currency=%s", in.AmountMinor, in.Currency)

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(in.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(in.ProductName),
					},
					UnitAmount: stripe.Int64(in.AmountMinor),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
	}
	params.Context = ctx
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := g.sessions.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			log.Printf("[payment][stripe][gateway] create rejected status=%d code=%s", stripeErr.HTTPStatusCode, stripeErr.Code)
			return "", entities.NewProviderHTTPError(entities.ErrProviderRequestFailed, entities.ProviderStripe, stripeErr.HTTPStatusCode, []byte(stripeErr.Error()))
		}
		log.Printf("[payment][stripe][gateway] create transport failed err=%v", err)
		return "", entities.NewProviderTransportError(entities.ErrProviderRequestFailed, entities.ProviderStripe, err)
	}

	log.Printf("[payment][stripe][gateway] create success session_id=%s", s.ID)
	return s.ID, nil
}
