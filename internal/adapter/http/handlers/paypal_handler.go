package handlers

import (
	"log"
	"net/http"

	request "booking_payments/internal/adapter/http/dto/request"
	response "booking_payments/internal/adapter/http/dto/response"
	"booking_payments/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PayPalHandler handles HTTP requests for the wallet gateway.
type PayPalHandler struct {
	usecase usecase.IPayPalUseCase
}

func NewPayPalHandler(uc usecase.IPayPalUseCase) *PayPalHandler {
	return &PayPalHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Create a PayPal order
// @Description  Amount is sent to PayPal as a major-unit decimal string.
// @Tags         paypal
// @Accept       json
// @Produce      json
// @Param        body  body      request.AmountRequest  true  "Order amount"
// @Success      200   {object}  response.PayPalOrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /create-paypal-order [post]
func (h *PayPalHandler) CreateOrder(c *gin.Context) {
	var payload request.AmountRequest
	if err := bindJSONBody(c, &payload); err != nil {
		log.Printf("[payment][paypal][handler] create-order invalid payload err=%v", err)
		appErr := newInvalidRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.ResolveAmount(), payload.Currency)
	if err != nil {
		log.Printf("[payment][paypal][handler] create-order failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWalletOrder(order))
}

// CaptureOrder godoc
// @Summary      Capture an approved PayPal order
// @Tags         paypal
// @Accept       json
// @Produce      json
// @Param        body  body      request.PayPalCaptureRequest  true  "Order to capture"
// @Success      200   {object}  response.PayPalCaptureResponse
// @Failure      400   {object}  pkg.HTTPResultError
// @Failure      500   {object}  pkg.HTTPResultError
// @Router       /capture-paypal-payment [post]
func (h *PayPalHandler) CaptureOrder(c *gin.Context) {
	var payload request.PayPalCaptureRequest
	if err := bindJSONBody(c, &payload); err != nil {
		log.Printf("[payment][paypal][handler] capture invalid payload err=%v", err)
		appErr := newInvalidRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPResultError())
		return
	}

	capture, err := h.usecase.CaptureOrder(c.Request.Context(), payload.OrderID)
	if err != nil {
		log.Printf("[payment][paypal][handler] capture failed order_id=%s err=%v", payload.OrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPResultError())
		return
	}

	c.JSON(http.StatusOK, response.FromCapture(capture))
}
