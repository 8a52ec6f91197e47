// Package signature implements the Razorpay checkout signature scheme:
// hex(HMAC-SHA256(secret, orderID + "|" + paymentID)).
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

const separator = "|"

// Sign returns the lowercase hex signature Razorpay attaches to a completed checkout.
func Sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + separator + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether received matches the expected signature exactly.
// The comparison is constant-time and case-sensitive.
func Verify(secret, orderID, paymentID, received string) bool {
	expected := Sign(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(received))
}
