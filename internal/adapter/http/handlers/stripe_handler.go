package handlers

import (
	"log"
	"net/http"

	request "booking_payments/internal/adapter/http/dto/request"
	response "booking_payments/internal/adapter/http/dto/response"
	"booking_payments/internal/usecase"

	"github.com/gin-gonic/gin"
)

// StripeHandler handles HTTP requests for the card/checkout gateway.
type StripeHandler struct {
	usecase usecase.IStripeUseCase
}

func NewStripeHandler(uc usecase.IStripeUseCase) *StripeHandler {
	return &StripeHandler{usecase: uc}
}

// CreateSession godoc
// @Summary      Create a Stripe Checkout session
// @Description  Redirect URLs are built from the Origin header, falling back to DEFAULT_ORIGIN.
// @Tags         stripe
// @Accept       json
// @Produce      json
// @Param        Origin  header    string                         false  "Front-end origin for redirect URLs"
// @Param        body    body      request.StripeSessionRequest  true   "Booking and amount"
// @Success      200     {object}  response.StripeSessionResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      500     {object}  pkg.HTTPError
// @Router       /create-stripe-session [post]
func (h *StripeHandler) CreateSession(c *gin.Context) {
	var payload request.StripeSessionRequest
	if err := bindJSONBody(c, &payload); err != nil {
		log.Printf("[payment][stripe][handler] create-session invalid payload err=%v", err)
		appErr := newInvalidRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sessionID, err := h.usecase.CreateSession(c.Request.Context(), payload.ToCheckoutRequest(c.GetHeader("Origin")))
	if err != nil {
		log.Printf("[payment][stripe][handler] create-session failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.StripeSessionResponse{ID: sessionID})
}
