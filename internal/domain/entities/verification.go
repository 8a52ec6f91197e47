package entities

import (
	"encoding/json"
	"strings"
)

// VerificationPayload is the client-reported Razorpay checkout completion.
// Booking travels alongside untouched; only its presence in the request matters.
type VerificationPayload struct {
	PaymentID string
	OrderID   string
	Signature string
	Booking   json.RawMessage
}

func (p VerificationPayload) HasRequiredFields() bool {
	return strings.TrimSpace(p.PaymentID) != "" &&
		strings.TrimSpace(p.OrderID) != "" &&
		strings.TrimSpace(p.Signature) != ""
}
