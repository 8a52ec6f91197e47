package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"booking_payments/internal/config"
	"booking_payments/internal/domain/entities"
	"booking_payments/internal/domain/signature"
	"booking_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingVerificationFields = errors.New("missing payment verification fields")
	ErrSignatureMismatch         = errors.New("payment signature mismatch")
)

// Razorpay caps receipts at 40 characters.
const receiptPrefix = "rcpt_"

//go:generate mockgen -source=razorpay_usecase.go -destination=../adapter/http/handlers/mocks/razorpay_usecase_mock.go -package=mocks

// IRazorpayUseCase covers the regional gateway: order creation and
// verification of the signed checkout completion reported by the client.
//
// Persisting the verified booking is intentionally left to the caller.
type IRazorpayUseCase interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency string) (json.RawMessage, error)
	VerifyPayment(ctx context.Context, payload entities.VerificationPayload) error
}

type RazorpayUseCase struct {
	gateway    interfaces.IRegionalGateway
	keySecret  string
	newReceipt func() string
}

var _ IRazorpayUseCase = (*RazorpayUseCase)(nil)

func NewRazorpayUseCase(gateway interfaces.IRegionalGateway, creds config.Razorpay) *RazorpayUseCase {
	return &RazorpayUseCase{gateway: gateway, keySecret: creds.KeySecret, newReceipt: newReceiptID}
}

func (u *RazorpayUseCase) CreateOrder(ctx context.Context, amount decimal.Decimal, currency string) (json.RawMessage, error) {
	log.Printf("[payment][razorpay][usecase] create-order start amount=%s currency=%q", amount, currency)
	if !entities.IsValidAmount(amount) {
		log.Printf("[payment][razorpay][usecase] invalid amount=%s", amount)
		return nil, ErrInvalidAmount
	}
	if u.gateway == nil {
		log.Printf("[payment][razorpay][usecase] gateway not configured")
		return nil, errors.New("razorpay gateway not configured")
	}

	req := entities.RegionalOrderRequest{
		AmountMinor: entities.ToMinorUnits(amount),
		Currency:    entities.NormalizeCurrency(currency, entities.DefaultRazorpayCurrency),
		Receipt:     u.newReceipt(),
		AutoCapture: true,
	}

	order, err := u.gateway.CreateOrder(ctx, req)
	if err != nil {
		log.Printf("[payment][razorpay][usecase] create-order failed receipt=%s err=%v", req.Receipt, err)
		return nil, err
	}
	log.Printf("[payment][razorpay][usecase] create-order success receipt=%s amount_minor=%d currency=%s", req.Receipt, req.AmountMinor, req.Currency)
	return order, nil
}

func (u *RazorpayUseCase) VerifyPayment(ctx context.Context, payload entities.VerificationPayload) error {
	log.Printf("[payment][razorpay][usecase] verify start order_id=%q payment_id=%q", payload.OrderID, payload.PaymentID)
	if !payload.HasRequiredFields() {
		log.Printf("[payment][razorpay][usecase] verify rejected: missing fields")
		return ErrMissingVerificationFields
	}
	if u.keySecret == "" {
		log.Printf("[payment][razorpay][usecase] missing RAZORPAY_KEY_SECRET")
		return entities.ErrCredentialsMissing
	}

	if !signature.Verify(u.keySecret, payload.OrderID, payload.PaymentID, payload.Signature) {
		log.Printf("[payment][razorpay][security] signature mismatch order_id=%s payment_id=%s", payload.OrderID, payload.PaymentID)
		return ErrSignatureMismatch
	}

	log.Printf("[payment][razorpay][usecase] verify success order_id=%s payment_id=%s booking_len=%d", payload.OrderID, payload.PaymentID, len(payload.Booking))
	return nil
}

func newReceiptID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return receiptPrefix + strings.ReplaceAll(id.String(), "-", "")
}
