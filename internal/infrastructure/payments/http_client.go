package payments

import (
	"net/http"

	"booking_payments/internal/config"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewRestyClient builds the shared outbound client for provider REST calls.
// Retries stay disabled: a failed provider call is surfaced as-is.
func NewRestyClient(cfg config.HTTPClient) *resty.Client {
	return resty.New().
		SetTimeout(cfg.Timeout).
		SetTransport(otelhttp.NewTransport(http.DefaultTransport)).
		SetRetryCount(0).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetHeader("Accept", "application/json")
}

// NewHTTPClient is the net/http flavour for SDKs that take an *http.Client.
func NewHTTPClient(cfg config.HTTPClient) *http.Client {
	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}
