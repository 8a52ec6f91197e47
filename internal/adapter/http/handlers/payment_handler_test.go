package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"booking_payments/internal/adapter/http/handlers/mocks"
	"booking_payments/internal/domain/entities"
	"booking_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func doJSON(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not json: %v body=%s", err, w.Body.String())
	}
	return body
}

func TestRazorpayHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns provider order verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRazorpayUseCase(ctrl)
		h := NewRazorpayHandler(uc)

		r := gin.New()
		r.POST("/create-razorpay-order", h.CreateOrder)

		uc.EXPECT().
			CreateOrder(gomock.Any(), decimal.RequireFromString("500"), "INR").
			Return(json.RawMessage(`{"id":"order_1","amount":50000}`), nil)

		w := doJSON(r, http.MethodPost, "/create-razorpay-order", `{"amount":500,"currency":"INR"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"id":"order_1","amount":50000}` {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("empty body reaches use case with zero amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRazorpayUseCase(ctrl)
		h := NewRazorpayHandler(uc)

		r := gin.New()
		r.POST("/create-razorpay-order", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), decimal.Zero, "").Return(nil, usecase.ErrInvalidAmount)

		w := doJSON(r, http.MethodPost, "/create-razorpay-order", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_AMOUNT" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRazorpayUseCase(ctrl)
		h := NewRazorpayHandler(uc)

		r := gin.New()
		r.POST("/create-razorpay-order", h.CreateOrder)

		w := doJSON(r, http.MethodPost, "/create-razorpay-order", `{"amount":"NaN"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("provider failure carries details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRazorpayUseCase(ctrl)
		h := NewRazorpayHandler(uc)

		r := gin.New()
		r.POST("/create-razorpay-order", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, entities.NewProviderHTTPError(entities.ErrProviderRequestFailed, entities.ProviderRazorpay, 401, []byte(`{"error":{"code":"BAD_REQUEST_ERROR"}}`)))

		w := doJSON(r, http.MethodPost, "/create-razorpay-order", `{"amount":10}`, nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["code"] != "PROVIDER_REQUEST_FAILED" || body["details"] == nil {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestRazorpayHandler_VerifyPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRazorpayUseCase(ctrl)
		h := NewRazorpayHandler(uc)

		r := gin.New()
		r.POST("/verify-razorpay-payment", h.VerifyPayment)

		uc.EXPECT().
			VerifyPayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p entities.VerificationPayload) error {
				if p.PaymentID != "pay_1" || p.OrderID != "order_1" || p.Signature != "sig" {
					t.Fatalf("unexpected payload %+v", p)
				}
				return nil
			})

		w := doJSON(r, http.MethodPost, "/verify-razorpay-payment",
			`{"razor":{"razorpay_payment_id":"pay_1","razorpay_order_id":"order_1","razorpay_signature":"sig"},"booking":{"id":1}}`, nil)
		if w.Code != http.StatusOK || w.Body.String() != `{"success":true}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "missing fields", err: usecase.ErrMissingVerificationFields, status: http.StatusBadRequest, code: "MISSING_VERIFICATION_FIELDS"},
		{name: "mismatch", err: usecase.ErrSignatureMismatch, status: http.StatusBadRequest, code: "SIGNATURE_MISMATCH"},
		{name: "secret missing", err: entities.ErrCredentialsMissing, status: http.StatusInternalServerError, code: "CREDENTIALS_MISSING"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIRazorpayUseCase(ctrl)
			h := NewRazorpayHandler(uc)

			r := gin.New()
			r.POST("/verify-razorpay-payment", h.VerifyPayment)

			uc.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).Return(tc.err)

			w := doJSON(r, http.MethodPost, "/verify-razorpay-payment", `{"razor":{}}`, nil)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			body := decodeBody(t, w)
			if body["success"] != false || body["code"] != tc.code {
				t.Fatalf("unexpected body %+v", body)
			}
		})
	}
}

func TestStripeHandler_CreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success passes origin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStripeUseCase(ctrl)
		h := NewStripeHandler(uc)

		r := gin.New()
		r.POST("/create-stripe-session", h.CreateSession)

		uc.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req entities.CheckoutRequest) (string, error) {
				if req.Origin != "https://shop.example" || !req.Amount.Equal(decimal.RequireFromString("100.5")) {
					t.Fatalf("unexpected request %+v", req)
				}
				if string(req.Booking) != `{"customerName":"Ana"}` {
					t.Fatalf("unexpected booking %s", req.Booking)
				}
				return "cs_test_1", nil
			})

		w := doJSON(r, http.MethodPost, "/create-stripe-session", `{"booking":{"customerName":"Ana"},"amount":100.5}`,
			map[string]string{"Origin": "https://shop.example"})
		if w.Code != http.StatusOK || w.Body.String() != `{"id":"cs_test_1"}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("credentials missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStripeUseCase(ctrl)
		h := NewStripeHandler(uc)

		r := gin.New()
		r.POST("/create-stripe-session", h.CreateSession)

		uc.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return("", entities.ErrCredentialsMissing)

		w := doJSON(r, http.MethodPost, "/create-stripe-session", `{"amount":10}`, nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestPayPalHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayPalUseCase(ctrl)
		h := NewPayPalHandler(uc)

		r := gin.New()
		r.POST("/create-paypal-order", h.CreateOrder)

		uc.EXPECT().
			CreateOrder(gomock.Any(), decimal.RequireFromString("100.5"), "USD").
			Return(entities.WalletOrder{OrderID: "ORD-1", Order: json.RawMessage(`{"id":"ORD-1"}`)}, nil)

		w := doJSON(r, http.MethodPost, "/create-paypal-order", `{"amount":"100.5","currency":"USD"}`, nil)
		if w.Code != http.StatusOK || w.Body.String() != `{"orderId":"ORD-1","order":{"id":"ORD-1"}}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("create order token failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayPalUseCase(ctrl)
		h := NewPayPalHandler(uc)

		r := gin.New()
		r.POST("/create-paypal-order", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.WalletOrder{}, entities.NewProviderHTTPError(entities.ErrTokenExchangeFailed, entities.ProviderPayPal, 401, []byte(`{"error":"invalid_client"}`)))

		w := doJSON(r, http.MethodPost, "/create-paypal-order", `{"amount":5}`, nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decodeBody(t, w)
		details, _ := body["details"].(map[string]any)
		if body["code"] != "TOKEN_EXCHANGE_FAILED" || details["error"] != "invalid_client" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("capture", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayPalUseCase(ctrl)
		h := NewPayPalHandler(uc)

		r := gin.New()
		r.POST("/capture-paypal-payment", h.CaptureOrder)

		uc.EXPECT().CaptureOrder(gomock.Any(), "ORD-1").Return(json.RawMessage(`{"status":"COMPLETED"}`), nil)

		w := doJSON(r, http.MethodPost, "/capture-paypal-payment", `{"orderId":"ORD-1"}`, nil)
		if w.Code != http.StatusOK || w.Body.String() != `{"success":true,"capture":{"status":"COMPLETED"}}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("capture missing order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayPalUseCase(ctrl)
		h := NewPayPalHandler(uc)

		r := gin.New()
		r.POST("/capture-paypal-payment", h.CaptureOrder)

		uc.EXPECT().CaptureOrder(gomock.Any(), "").Return(nil, usecase.ErrMissingOrderID)

		w := doJSON(r, http.MethodPost, "/capture-paypal-payment", `{}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["success"] != false || body["code"] != "MISSING_ORDER_ID" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", Health)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != `{"ok":true}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
		{usecase.ErrInvalidBooking, http.StatusBadRequest, "INVALID_BOOKING"},
		{usecase.ErrMissingVerificationFields, http.StatusBadRequest, "MISSING_VERIFICATION_FIELDS"},
		{usecase.ErrSignatureMismatch, http.StatusBadRequest, "SIGNATURE_MISMATCH"},
		{usecase.ErrMissingOrderID, http.StatusBadRequest, "MISSING_ORDER_ID"},
		{entities.ErrCredentialsMissing, http.StatusInternalServerError, "CREDENTIALS_MISSING"},
		{entities.NewProviderTransportError(entities.ErrTokenExchangeFailed, entities.ProviderPayPal, errors.New("timeout")), http.StatusInternalServerError, "TOKEN_EXCHANGE_FAILED"},
		{entities.NewProviderHTTPError(entities.ErrProviderRequestFailed, entities.ProviderStripe, 400, nil), http.StatusInternalServerError, "PROVIDER_REQUEST_FAILED"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		appErr := mapPaymentError(tc.err)
		if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
			t.Fatalf("%v: expected %d/%s, got %d/%s", tc.err, tc.status, tc.code, appErr.HTTPStatus, appErr.Code)
		}
	}

	transport := mapPaymentError(entities.NewProviderTransportError(entities.ErrProviderRequestFailed, entities.ProviderRazorpay, errors.New("dial tcp: refused")))
	if transport.Details != "dial tcp: refused" {
		t.Fatalf("expected transport message as details, got %#v", transport.Details)
	}
}
