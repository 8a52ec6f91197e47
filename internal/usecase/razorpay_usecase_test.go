package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"booking_payments/internal/config"
	"booking_payments/internal/domain/entities"
	"booking_payments/internal/domain/signature"
	mock_interfaces "booking_payments/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestRazorpayUseCase_CreateOrder_Validations(t *testing.T) {
	for _, amount := range []string{"0", "-1", "-0.01", "92233720368547758.08", "184467440737095517.16"} {
		t.Run("amount "+amount, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gateway := mock_interfaces.NewMockIRegionalGateway(ctrl)
			uc := NewRazorpayUseCase(gateway, config.Razorpay{KeySecret: "s"})

			_, err := uc.CreateOrder(context.Background(), decimal.RequireFromString(amount), "INR")
			if !errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("expected ErrInvalidAmount, got %v", err)
			}
		})
	}

	t.Run("missing amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIRegionalGateway(ctrl)
		uc := NewRazorpayUseCase(gateway, config.Razorpay{})

		_, err := uc.CreateOrder(context.Background(), decimal.Decimal{}, "")
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewRazorpayUseCase(nil, config.Razorpay{})
		_, err := uc.CreateOrder(context.Background(), decimal.NewFromInt(10), "INR")
		if err == nil || err.Error() != "razorpay gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})
}

func TestRazorpayUseCase_CreateOrder(t *testing.T) {
	t.Run("converts to minor units with defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIRegionalGateway(ctrl)
		uc := NewRazorpayUseCase(gateway, config.Razorpay{KeyID: "k", KeySecret: "s"})

		gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.RegionalOrderRequest) (json.RawMessage, error) {
				if req.AmountMinor != 10050 {
					t.Fatalf("expected 10050 minor units, got %d", req.AmountMinor)
				}
				if req.Currency != "INR" {
					t.Fatalf("expected default INR, got %q", req.Currency)
				}
				if !req.AutoCapture {
					t.Fatalf("expected auto capture")
				}
				if !strings.HasPrefix(req.Receipt, receiptPrefix) || len(req.Receipt) > 40 {
					t.Fatalf("unexpected receipt %q", req.Receipt)
				}
				return json.RawMessage(`{"id":"order_1","amount":10050}`), nil
			})

		order, err := uc.CreateOrder(context.Background(), decimal.RequireFromString("100.5"), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(order) != `{"id":"order_1","amount":10050}` {
			t.Fatalf("expected provider order verbatim, got %s", order)
		}
	})

	t.Run("provider failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIRegionalGateway(ctrl)
		uc := NewRazorpayUseCase(gateway, config.Razorpay{KeyID: "k", KeySecret: "s"})

		providerErr := entities.NewProviderHTTPError(entities.ErrProviderRequestFailed, entities.ProviderRazorpay, 400, []byte(`{"error":{"code":"BAD_REQUEST_ERROR"}}`))
		gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, providerErr)

		_, err := uc.CreateOrder(context.Background(), decimal.NewFromInt(5), "usd")
		if !errors.Is(err, entities.ErrProviderRequestFailed) {
			t.Fatalf("expected ErrProviderRequestFailed, got %v", err)
		}
	})
}

func TestNewReceiptID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := newReceiptID()
		if len(id) > 40 {
			t.Fatalf("receipt too long: %q", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate receipt %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestRazorpayUseCase_VerifyPayment(t *testing.T) {
	const secret = "rzp_secret"
	valid := entities.VerificationPayload{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: signature.Sign(secret, "order_1", "pay_1"),
		Booking:   json.RawMessage(`{"customerName":"Ana"}`),
	}

	t.Run("valid signature", func(t *testing.T) {
		uc := NewRazorpayUseCase(nil, config.Razorpay{KeySecret: secret})
		if err := uc.VerifyPayment(context.Background(), valid); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})

	t.Run("altered signature", func(t *testing.T) {
		uc := NewRazorpayUseCase(nil, config.Razorpay{KeySecret: secret})
		p := valid
		p.Signature = "0" + valid.Signature[1:]
		if p.Signature == valid.Signature {
			p.Signature = "1" + valid.Signature[1:]
		}
		if err := uc.VerifyPayment(context.Background(), p); !errors.Is(err, ErrSignatureMismatch) {
			t.Fatalf("expected ErrSignatureMismatch, got %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		uc := NewRazorpayUseCase(nil, config.Razorpay{KeySecret: secret})
		for _, p := range []entities.VerificationPayload{
			{OrderID: "order_1", Signature: "x"},
			{PaymentID: "pay_1", Signature: "x"},
			{OrderID: "order_1", PaymentID: "pay_1"},
		} {
			err := uc.VerifyPayment(context.Background(), p)
			if !errors.Is(err, ErrMissingVerificationFields) {
				t.Fatalf("expected ErrMissingVerificationFields, got %v", err)
			}
			if errors.Is(err, ErrSignatureMismatch) {
				t.Fatalf("missing fields must be distinct from mismatch")
			}
		}
	})

	t.Run("missing secret", func(t *testing.T) {
		uc := NewRazorpayUseCase(nil, config.Razorpay{})
		if err := uc.VerifyPayment(context.Background(), valid); !errors.Is(err, entities.ErrCredentialsMissing) {
			t.Fatalf("expected ErrCredentialsMissing, got %v", err)
		}
	})
}
