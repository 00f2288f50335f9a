package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brunovale/mock-payment-gateway/internal/domain/usecase/payment"
	"github.com/brunovale/mock-payment-gateway/internal/infrastructure/adapter/api/dto"
)

// HealthHandler answers liveness probes with the gateway's identity
type HealthHandler struct {
	paymentService *payment.Service
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(paymentService *payment.Service) *HealthHandler {
	return &HealthHandler{paymentService: paymentService}
}

// Health handles the GET /health endpoint; it always succeeds and has no
// side effects
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.paymentService.Health()
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:        status.Status,
		PaymentSystem: status.PaymentSystem,
		Country:       status.Country,
	})
}
