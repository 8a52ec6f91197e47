package request

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmountRequest_Decode(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{body: `{"amount":500,"currency":"INR"}`, want: "500"},
		{body: `{"amount":"100.5"}`, want: "100.5"},
		{body: `{"currency":"USD"}`, want: "0"},
		{body: `{"amount":null}`, want: "0"},
	}
	for _, tc := range cases {
		var r AmountRequest
		if err := json.Unmarshal([]byte(tc.body), &r); err != nil {
			t.Fatalf("body %s: unexpected error %v", tc.body, err)
		}
		if got := r.ResolveAmount(); !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Fatalf("body %s: expected %s, got %s", tc.body, tc.want, got)
		}
	}
}

func TestAmountRequest_RejectsNonNumeric(t *testing.T) {
	for _, body := range []string{`{"amount":"NaN"}`, `{"amount":"abc"}`, `{"amount":true}`} {
		var r AmountRequest
		if err := json.Unmarshal([]byte(body), &r); err == nil {
			t.Fatalf("body %s: expected decode error", body)
		}
	}
}

func TestRazorpayVerifyRequest_ToVerificationPayload(t *testing.T) {
	var r RazorpayVerifyRequest
	body := `{"razor":{"razorpay_payment_id":"pay_1","razorpay_order_id":"order_1","razorpay_signature":"sig"},"booking":{"id":7}}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := r.ToVerificationPayload()
	if p.PaymentID != "pay_1" || p.OrderID != "order_1" || p.Signature != "sig" {
		t.Fatalf("unexpected payload %+v", p)
	}
	if string(p.Booking) != `{"id":7}` {
		t.Fatalf("unexpected booking %s", p.Booking)
	}

	if empty := (RazorpayVerifyRequest{}).ToVerificationPayload(); empty.HasRequiredFields() {
		t.Fatalf("missing razor block must not have required fields")
	}
}

func TestStripeSessionRequest_ToCheckoutRequest(t *testing.T) {
	amount := decimal.RequireFromString("100.5")
	r := StripeSessionRequest{Booking: json.RawMessage(`{"a":1}`), Amount: &amount, Currency: "inr"}

	req := r.ToCheckoutRequest(" https://shop.example ")
	if !req.Amount.Equal(amount) || req.Currency != "inr" || req.Origin != "https://shop.example" {
		t.Fatalf("unexpected checkout request %+v", req)
	}
	if (StripeSessionRequest{}).ToCheckoutRequest("").Amount.Sign() != 0 {
		t.Fatalf("missing amount must resolve to zero")
	}
}
