package http

import (
	"net/http"

	"chatorder-service/internal/dto"
	"chatorder-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	payments service.PaymentService
	log      *zap.Logger
}

func NewPaymentHandler(payments service.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{payments: payments, log: log}
}

// Initialize godoc
// @Summary Initialize a gateway transaction for a placed order
// @Tags payment
// @Accept json
// @Produce json
// @Param payment body dto.InitializePaymentRequest true "Order id and payer email"
// @Success 200 {object} service.PaymentInitResult
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Failure 409 {object} dto.ConflictErrorResponse
// @Failure 502 {object} dto.UpstreamErrorResponse
// @Router /payment/initialize [post]
func (h *PaymentHandler) Initialize(c *gin.Context) {
	var req dto.InitializePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid payment initialize request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body"))
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("orderId must be a UUID"))
		return
	}

	result, err := h.payments.Initialize(c.Request.Context(), orderID, req.Email)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Verify godoc
// @Summary Verify a transaction by reference
// @Description Safe to call repeatedly; a verified order stays paid
// @Tags payment
// @Produce json
// @Param reference query string true "Gateway transaction reference"
// @Success 200 {object} service.VerifyResult
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Failure 502 {object} dto.UpstreamErrorResponse
// @Router /payment/verify [get]
func (h *PaymentHandler) Verify(c *gin.Context) {
	result, err := h.payments.Verify(c.Request.Context(), c.Query("reference"))
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Callback godoc
// @Summary Gateway return URL
// @Description Verifies the reference and wraps the outcome in a human-readable message
// @Tags payment
// @Produce json
// @Param reference query string true "Gateway transaction reference"
// @Success 200 {object} dto.PaymentCallbackResponse
// @Router /payment/callback [get]
func (h *PaymentHandler) Callback(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		c.JSON(http.StatusOK, dto.PaymentCallbackResponse{
			Success: false,
			Message: "Payment reference is required",
		})
		return
	}

	result, err := h.payments.Verify(c.Request.Context(), reference)
	if err != nil {
		h.log.Warn("payment callback verification failed", zap.String("reference", reference), zap.Error(err))
		c.JSON(http.StatusOK, dto.PaymentCallbackResponse{
			Success: false,
			Message: "Payment verification failed.",
		})
		return
	}

	message := "Payment verification failed."
	if result.Success {
		message = "Payment successful! Your order has been confirmed."
	}
	c.JSON(http.StatusOK, dto.PaymentCallbackResponse{
		Success: result.Success,
		Message: message,
		Data:    result.Data,
	})
}
