package main

import (
	_ "booking_payments/docs"
	"booking_payments/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Booking Payments API
// @version         1.0
// @description     Payment adapter for bookings: Razorpay orders and signature verification, Stripe Checkout sessions, PayPal orders and capture.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
