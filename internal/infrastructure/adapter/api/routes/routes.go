package routes

import (
	coreport "github.com/brunovale/mock-payment-gateway/internal/domain/port/core"
	"github.com/brunovale/mock-payment-gateway/internal/infrastructure/adapter/api/handler"
	"github.com/brunovale/mock-payment-gateway/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	paymentHandler *handler.PaymentHandler,
	healthHandler *handler.HealthHandler,
) {
	// Payment routes
	paymentRoutes := router.Group("/payments")
	{
		// POST /payments
		paymentRoutes.POST("", paymentHandler.CreatePayment)

		// GET /payments/:transactionId
		paymentRoutes.GET("/:transactionId", paymentHandler.GetPaymentStatus)
	}

	// GET /health
	router.GET("/health", healthHandler.Health)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
