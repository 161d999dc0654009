package http

import (
	"net/http"
	"strconv"

	"chatorder-service/internal/dto"
	"chatorder-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MenuHandler struct {
	menu service.MenuService
	log  *zap.Logger
}

func NewMenuHandler(menu service.MenuService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{menu: menu, log: log}
}

// List godoc
// @Summary Available menu items
// @Tags menu
// @Produce json
// @Success 200 {array} models.MenuItem
// @Router /menu [get]
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menu.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Menu item by id
// @Tags menu
// @Produce json
// @Param id path int true "Menu item id"
// @Success 200 {object} models.MenuItem
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /menu/{id} [get]
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("id must be an integer"))
		return
	}

	item, err := h.menu.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
