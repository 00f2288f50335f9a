package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domainerr "github.com/brunovale/mock-payment-gateway/internal/domain/error"
	coreport "github.com/brunovale/mock-payment-gateway/internal/domain/port/core"
	"github.com/brunovale/mock-payment-gateway/internal/domain/usecase/payment"
	"github.com/brunovale/mock-payment-gateway/internal/infrastructure/adapter/api/dto"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *payment.Service
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(paymentService *payment.Service, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// CreatePayment handles the POST /payments endpoint
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid payment request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Success: false,
			Error:   "Invalid request format: " + err.Error(),
		})
		return
	}

	transaction, err := h.paymentService.CreatePayment(c.Request.Context(), req.ToCreateRequest())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// GetPaymentStatus handles the GET /payments/:transactionId endpoint
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	transactionID := c.Param("transactionId")

	result, err := h.paymentService.CheckStatus(c.Request.Context(), transactionID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStatusResponse(result))
}

// renderError maps engine errors onto the wire-level error bodies of the
// gateway being mocked
func (h *PaymentHandler) renderError(c *gin.Context, err error) {
	var typeErr *domainerr.UnsupportedPaymentTypeError
	if errors.As(err, &typeErr) {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Success:        false,
			Error:          fmt.Sprintf("Only %s payments are supported", strings.Join(typeErr.SupportedTypes, ", ")),
			SupportedTypes: typeErr.SupportedTypes,
		})
		return
	}

	var missingErr *domainerr.MissingFieldsError
	if errors.As(err, &missingErr) {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Success:        false,
			Error:          "Missing required payment information",
			RequiredFields: missingErr.RequiredFields,
		})
		return
	}

	var notFoundErr *domainerr.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, dto.NotFoundResponse{
			Success:       false,
			Error:         "Transaction not found",
			TransactionID: notFoundErr.TransactionID,
		})
		return
	}

	var systemicErr *domainerr.SystemicError
	if errors.As(err, &systemicErr) {
		c.JSON(http.StatusInternalServerError, dto.SystemicErrorResponse{
			Success:   false,
			Error:     systemicErr.Message,
			ErrorCode: systemicErr.Kind,
			Timestamp: time.Now().UTC(),
		})
		return
	}

	h.logger.Error("Unexpected error handling payment request", map[string]any{
		"error": err.Error(),
	})
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
		Message: "Internal server error",
	})
}
