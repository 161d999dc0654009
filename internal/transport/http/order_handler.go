package http

import (
	"net/http"

	"chatorder-service/internal/dto"
	"chatorder-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderHandler exposes the order aggregate directly, addressed by session id.
// The chat surface is the primary client; these endpoints serve UI polling
// and debugging.
type OrderHandler struct {
	orders service.OrderService
	log    *zap.Logger
}

func NewOrderHandler(orders service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, log: log}
}

func (h *OrderHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("sessionId must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// Current godoc
// @Summary Current open order for a session
// @Tags orders
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} models.Order
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /orders/current/{sessionId} [get]
func (h *OrderHandler) Current(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	order, err := h.orders.GetOpenOrder(c.Request.Context(), sessionID)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	// nil means no open order; the original returned null here as well
	c.JSON(http.StatusOK, order)
}

// AddItem godoc
// @Summary Add a menu item to the session's open order
// @Tags orders
// @Accept json
// @Produce json
// @Param item body dto.AddItemRequest true "Session, menu item and quantity"
// @Success 200 {object} models.Order
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Failure 409 {object} dto.ConflictErrorResponse
// @Router /orders/add-item [post]
func (h *OrderHandler) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid add-item request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body"))
		return
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("sessionId must be a UUID"))
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	order, err := h.orders.AddItem(c.Request.Context(), sessionID, req.MenuItemID, quantity)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Checkout godoc
// @Summary Place the session's open order
// @Tags orders
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} models.Order
// @Failure 409 {object} dto.ConflictErrorResponse
// @Router /orders/checkout/{sessionId} [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	order, err := h.orders.Checkout(c.Request.Context(), sessionID)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Cancel godoc
// @Summary Cancel the session's open order
// @Tags orders
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 204 "cancelled"
// @Failure 409 {object} dto.ConflictErrorResponse
// @Router /orders/cancel/{sessionId} [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.orders.Cancel(c.Request.Context(), sessionID); err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// History godoc
// @Summary Placed orders for a session, most recent first
// @Tags orders
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {array} models.Order
// @Router /orders/history/{sessionId} [get]
func (h *OrderHandler) History(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	orders, err := h.orders.History(c.Request.Context(), sessionID)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Schedule godoc
// @Summary Schedule the session's open order
// @Tags orders
// @Accept json
// @Produce json
// @Param schedule body dto.ScheduleBySessionRequest true "Session id and future timestamp"
// @Success 200 {object} models.Order
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 409 {object} dto.ConflictErrorResponse
// @Router /orders/schedule [post]
func (h *OrderHandler) Schedule(c *gin.Context) {
	var req dto.ScheduleBySessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid order schedule request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body"))
		return
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("sessionId must be a UUID"))
		return
	}

	order, err := h.orders.Schedule(c.Request.Context(), sessionID, req.ScheduledFor)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
