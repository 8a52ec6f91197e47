package routes

import (
	"booking_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCreateRazorpayOrder   = "/create-razorpay-order"
	PathVerifyRazorpayPayment = "/verify-razorpay-payment"
	PathCreateStripeSession   = "/create-stripe-session"
	PathCreatePayPalOrder     = "/create-paypal-order"
	PathCapturePayPalPayment  = "/capture-paypal-payment"
)

// Paths are kept at the root for compatibility with the booking front-end.
func addPaymentRoutes(rg *gin.RouterGroup, razorpayHandler *handlers.RazorpayHandler, stripeHandler *handlers.StripeHandler, paypalHandler *handlers.PayPalHandler) {
	rg.POST(PathCreateRazorpayOrder, razorpayHandler.CreateOrder)
	rg.POST(PathVerifyRazorpayPayment, razorpayHandler.VerifyPayment)

	rg.POST(PathCreateStripeSession, stripeHandler.CreateSession)

	rg.POST(PathCreatePayPalOrder, paypalHandler.CreateOrder)
	rg.POST(PathCapturePayPalPayment, paypalHandler.CaptureOrder)
}
