package handlers

import (
	"errors"
	"io"
	"net/http"

	"booking_payments/internal/domain/entities"
	"booking_payments/internal/usecase"
	"booking_payments/pkg"

	"github.com/gin-gonic/gin"
)

func newInvalidRequestError(err error) *pkg.AppError {
	return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
}

// bindJSONBody decodes the request body into dst. An empty body is not an
// error: dst keeps its zero value and the use case validates it.
func bindJSONBody(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be a positive number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBooking):
		return pkg.NewDomainErrorSimple("INVALID_BOOKING", "Booking must be valid JSON", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingVerificationFields):
		return pkg.NewDomainErrorSimple("MISSING_VERIFICATION_FIELDS", "Missing payment verification fields", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSignatureMismatch):
		return pkg.NewDomainErrorSimple("SIGNATURE_MISMATCH", "Invalid payment signature", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingOrderID):
		return pkg.NewDomainErrorSimple("MISSING_ORDER_ID", "Missing orderId", http.StatusBadRequest)
	case errors.Is(err, entities.ErrCredentialsMissing):
		return pkg.NewDomainError("CREDENTIALS_MISSING", "Payment provider credentials are not configured", err, http.StatusInternalServerError)
	case errors.Is(err, entities.ErrTokenExchangeFailed):
		return withProviderDetails(pkg.NewDomainError("TOKEN_EXCHANGE_FAILED", "Payment provider authentication failed", err, http.StatusInternalServerError), err)
	case errors.Is(err, entities.ErrProviderRequestFailed):
		return withProviderDetails(pkg.NewDomainError("PROVIDER_REQUEST_FAILED", "Payment provider request failed", err, http.StatusInternalServerError), err)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func withProviderDetails(appErr *pkg.AppError, err error) *pkg.AppError {
	var pErr *entities.ProviderError
	if errors.As(err, &pErr) {
		return appErr.WithDetails(pErr.Details())
	}
	return appErr
}
