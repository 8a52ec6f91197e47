package routes

import (
	"context"
	"log"
	"net/http"

	_ "booking_payments/docs" // This will be auto-generated
	"booking_payments/internal/adapter/http/handlers"
	"booking_payments/internal/adapter/persistence/repository"
	"booking_payments/internal/config"
	"booking_payments/internal/infrastructure/database"
	"booking_payments/internal/infrastructure/payments"
	"booking_payments/internal/infrastructure/telemetry"
	"booking_payments/internal/usecase"
	"booking_payments/internal/usecase/interfaces"
	"booking_payments/pkg"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Run will start the server
func Run() {
	cfg := config.NewConfig()
	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Printf("[payment][telemetry] setup failed, continuing without telemetry err=%v", err)
	}

	router := NewRouter(cfg)
	err = router.Run(":" + cfg.Server.Port)

	if shutdown != nil {
		if shutdownErr := shutdown(ctx); shutdownErr != nil {
			log.Printf("[payment][telemetry] shutdown failed err=%v", shutdownErr)
		}
	}
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires every provider from cfg and returns a ready engine.
func NewRouter(cfg config.Config) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, cfg)
	return router
}

func getRoutes(router *gin.Engine, cfg config.Config) {
	logProviderStatus(cfg)

	restyClient := payments.NewRestyClient(cfg.HTTPClient)

	var tokenCache interfaces.ITokenCache
	if cfg.TokenCache.Enabled() {
		rdb := database.ConnectRedis(cfg.TokenCache)
		tokenCache = repository.NewTokenRedisRepository(rdb, cfg.TokenCache.Prefix)
	}

	razorpayGateway := payments.NewRazorpayGateway(cfg.Razorpay, restyClient)
	stripeGateway := payments.NewStripeGateway(cfg.Stripe, payments.NewHTTPClient(cfg.HTTPClient))
	paypalBroker := payments.NewPayPalTokenBroker(cfg.PayPal, restyClient, tokenCache)
	paypalGateway := payments.NewPayPalGateway(cfg.PayPal, restyClient)

	razorpayUseCase := usecase.NewRazorpayUseCase(razorpayGateway, cfg.Razorpay)
	stripeUseCase := usecase.NewStripeUseCase(stripeGateway, cfg.Server.DefaultOrigin)
	paypalUseCase := usecase.NewPayPalUseCase(paypalBroker, paypalGateway)

	razorpayHandler := handlers.NewRazorpayHandler(razorpayUseCase)
	stripeHandler := handlers.NewStripeHandler(stripeUseCase)
	paypalHandler := handlers.NewPayPalHandler(paypalUseCase)

	// Public routes
	root := &router.RouterGroup
	addHealthRoutes(root)
	addPaymentRoutes(root, razorpayHandler, stripeHandler, paypalHandler)
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
	if cfg.Telemetry.Enabled {
		router.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
}

// logProviderStatus reports which providers can serve requests. Only
// presence is logged, never key material.
func logProviderStatus(cfg config.Config) {
	log.Printf("[payment][config] razorpay_configured=%t stripe_configured=%t paypal_configured=%t paypal_mode=%s token_cache=%t",
		cfg.Razorpay.Configured(), cfg.Stripe.Configured(), cfg.PayPal.Configured(), cfg.PayPal.Mode, cfg.TokenCache.Enabled())
}
