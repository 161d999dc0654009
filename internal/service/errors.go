package service

import "errors"

var (
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrMenuItemUnavailable = errors.New("menu item is not available")
	ErrQuantityInvalid     = errors.New("quantity must be greater than 0")
	ErrNoOpenOrder         = errors.New("no open order")
	ErrEmptyOrder          = errors.New("order has no items")
	ErrOrderNotFound       = errors.New("order not found")
	ErrScheduleNotFuture   = errors.New("scheduled time must be in the future")

	ErrOrderNotReady        = errors.New("order is not ready for payment")
	ErrInvalidAmount        = errors.New("order amount must be greater than 0")
	ErrReferenceRequired    = errors.New("payment reference is required")
	ErrPaymentNotFound      = errors.New("payment reference not found")
	ErrPaymentInitFailed    = errors.New("payment initialization failed")
	ErrVerificationFailed   = errors.New("payment verification failed")
	ErrGatewayNotConfigured = errors.New("payment gateway is not configured")
)
