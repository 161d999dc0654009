package http

import (
	"errors"
	"net/http"

	"chatorder-service/internal/dto"
	"chatorder-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeServiceError maps service sentinel errors onto the HTTP error
// envelope. Anything unrecognized is a 500 and gets logged.
func writeServiceError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrQuantityInvalid),
		errors.Is(err, service.ErrScheduleNotFuture),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrReferenceRequired):
		c.JSON(http.StatusBadRequest, dto.NewValidationError(err.Error()))

	case errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundError(err.Error()))

	case errors.Is(err, service.ErrMenuItemUnavailable),
		errors.Is(err, service.ErrNoOpenOrder),
		errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, service.ErrOrderNotReady):
		c.JSON(http.StatusConflict, dto.NewConflictError(err.Error()))

	case errors.Is(err, service.ErrPaymentInitFailed),
		errors.Is(err, service.ErrVerificationFailed):
		c.JSON(http.StatusBadGateway, dto.NewUpstreamError(err.Error()))

	case errors.Is(err, service.ErrGatewayNotConfigured):
		// Configuration absence, not a transient upstream failure
		c.JSON(http.StatusServiceUnavailable, dto.BaseError{
			Code:    "gateway_not_configured",
			Message: err.Error(),
		})

	default:
		log.Error("unhandled service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
	}
}
