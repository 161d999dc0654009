package http

import (
	"net/http"

	"chatorder-service/internal/dto"
	"chatorder-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chat service.ChatService
	log  *zap.Logger
}

func NewChatHandler(chat service.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, log: log}
}

// Init godoc
// @Summary First contact for a device
// @Description Creates the session if needed and returns the greeting reply
// @Tags chat
// @Produce json
// @Param deviceId path string true "Opaque device identifier"
// @Success 200 {object} service.Reply
// @Failure 500 {object} dto.InternalErrorResponse
// @Router /chat/init/{deviceId} [get]
func (h *ChatHandler) Init(c *gin.Context) {
	deviceID := c.Param("deviceId")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("deviceId is required"))
		return
	}

	reply, err := h.chat.ProcessMessage(c.Request.Context(), deviceID, "")
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// SendMessage godoc
// @Summary Process one chat turn
// @Description Interprets the message against the session's conversation mode
// @Tags chat
// @Accept json
// @Produce json
// @Param message body dto.SendMessageRequest true "Device id and message text"
// @Success 200 {object} service.Reply
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.InternalErrorResponse
// @Router /chat/message [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid chat message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body"))
		return
	}

	reply, err := h.chat.ProcessMessage(c.Request.Context(), req.DeviceID, req.Message)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// Schedule godoc
// @Summary Schedule the device's open order
// @Tags chat
// @Accept json
// @Produce json
// @Param schedule body dto.ScheduleOrderRequest true "Device id and future timestamp"
// @Success 200 {object} service.Reply
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.InternalErrorResponse
// @Router /chat/schedule [post]
func (h *ChatHandler) Schedule(c *gin.Context) {
	var req dto.ScheduleOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid schedule request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body"))
		return
	}

	reply, err := h.chat.ScheduleOrder(c.Request.Context(), req.DeviceID, req.ScheduledFor)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// InitializePayment godoc
// @Summary Initialize payment for a placed order
// @Tags chat
// @Accept json
// @Produce json
// @Param payment body dto.InitializePaymentRequest true "Order id and payer email"
// @Success 200 {object} service.PaymentInitResult
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Failure 409 {object} dto.ConflictErrorResponse
// @Failure 502 {object} dto.UpstreamErrorResponse
// @Router /chat/payment/initialize [post]
func (h *ChatHandler) InitializePayment(c *gin.Context) {
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

	result, err := h.chat.InitializePaymentForOrder(c.Request.Context(), orderID, req.Email)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
