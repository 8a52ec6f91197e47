package routes

import (
	"booking_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathHealth = "/health"

func addHealthRoutes(rg *gin.RouterGroup) {
	rg.GET(PathHealth, handlers.Health)
}
