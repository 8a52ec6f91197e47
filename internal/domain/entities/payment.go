package entities

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentProvider names the upstream gateway an operation talks to.
type PaymentProvider string

const (
	ProviderRazorpay PaymentProvider = "razorpay"
	ProviderStripe   PaymentProvider = "stripe"
	ProviderPayPal   PaymentProvider = "paypal"
)

// Default currencies applied when the caller omits one.
const (
	DefaultRazorpayCurrency = "INR"
	DefaultStripeCurrency   = "INR"
	DefaultPayPalCurrency   = "USD"
)

var (
	minorUnitFactor = decimal.NewFromInt(100)
	maxMinorUnits   = decimal.NewFromInt(math.MaxInt64)
)

// IsValidAmount reports whether amount can be charged. Zero covers a missing
// amount. Amounts whose minor-unit value does not fit in an int64 are rejected.
func IsValidAmount(amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}
	return !amount.Mul(minorUnitFactor).Round(0).GreaterThan(maxMinorUnits)
}

// ToMinorUnits converts a major-unit amount to the smallest denomination of a
// two-decimal currency, rounding half away from zero (half-up for the
// positive amounts accepted here): 100.5 -> 10050. Callers must check
// IsValidAmount first.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnitFactor).Round(0).IntPart()
}

// NormalizeCurrency upper-cases an ISO 4217 code, falling back when empty.
func NormalizeCurrency(code, fallback string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return fallback
	}
	return code
}

// RegionalOrderRequest is what the Razorpay gateway sends to POST /v1/orders.
type RegionalOrderRequest struct {
	AmountMinor int64
	Currency    string
	Receipt     string
	AutoCapture bool
}

// CheckoutRequest is the inbound card checkout intent.
type CheckoutRequest struct {
	Booking  json.RawMessage
	Amount   decimal.Decimal
	Currency string
	Origin   string
}

// CheckoutSessionInput is the provider-ready single line-item session.
type CheckoutSessionInput struct {
	ProductName string
	AmountMinor int64
	Currency    string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// WalletOrderRequest carries the major-unit decimal string PayPal expects.
type WalletOrderRequest struct {
	Currency string
	Value    string
}

// WalletOrder is a created PayPal order: its id plus the full provider payload.
type WalletOrder struct {
	OrderID string
	Order   json.RawMessage
}
