package handlers

import (
	"log"
	"net/http"

	request "booking_payments/internal/adapter/http/dto/request"
	response "booking_payments/internal/adapter/http/dto/response"
	"booking_payments/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RazorpayHandler handles HTTP requests for the regional gateway.
type RazorpayHandler struct {
	usecase usecase.IRazorpayUseCase
}

func NewRazorpayHandler(uc usecase.IRazorpayUseCase) *RazorpayHandler {
	return &RazorpayHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Create a Razorpay order
// @Description  Amount is in major units and converted to paise before reaching Razorpay. The Razorpay order is returned verbatim.
// @Tags         razorpay
// @Accept       json
// @Produce      json
// @Param        body  body      request.AmountRequest  true  "Order amount"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /create-razorpay-order [post]
func (h *RazorpayHandler) CreateOrder(c *gin.Context) {
	var payload request.AmountRequest
	if err := bindJSONBody(c, &payload); err != nil {
		log.Printf("[payment][razorpay][handler] create-order invalid payload err=%v", err)
		appErr := newInvalidRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.ResolveAmount(), payload.Currency)
	if err != nil {
		log.Printf("[payment][razorpay][handler] create-order failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, gin.MIMEJSON+"; charset=utf-8", order)
}

// VerifyPayment godoc
// @Summary      Verify a Razorpay checkout signature
// @Tags         razorpay
// @Accept       json
// @Produce      json
// @Param        body  body      request.RazorpayVerifyRequest  true  "Checkout result and booking"
// @Success      200   {object}  response.VerifyPaymentResponse
// @Failure      400   {object}  pkg.HTTPResultError
// @Failure      500   {object}  pkg.HTTPResultError
// @Router       /verify-razorpay-payment [post]
func (h *RazorpayHandler) VerifyPayment(c *gin.Context) {
	var payload request.RazorpayVerifyRequest
	if err := bindJSONBody(c, &payload); err != nil {
		log.Printf("[payment][razorpay][handler] verify invalid payload err=%v", err)
		appErr := newInvalidRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPResultError())
		return
	}

	if err := h.usecase.VerifyPayment(c.Request.Context(), payload.ToVerificationPayload()); err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPResultError())
		return
	}

	c.JSON(http.StatusOK, response.VerifyPaymentResponse{Success: true})
}
