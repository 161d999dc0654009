package dto

import "time"

type SendMessageRequest struct {
	DeviceID string `json:"deviceId" binding:"required"`
	Message  string `json:"message"`
}

type ScheduleOrderRequest struct {
	DeviceID     string    `json:"deviceId" binding:"required"`
	ScheduledFor time.Time `json:"scheduledFor" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type InitializePaymentRequest struct {
	OrderID string `json:"orderId" binding:"required,uuid"`
	Email   string `json:"email" binding:"required,email"`
}

type AddItemRequest struct {
	SessionID  string `json:"sessionId" binding:"required,uuid"`
	MenuItemID int64  `json:"menuItemId" binding:"required,gt=0"`
	Quantity   int    `json:"quantity"`
}

type ScheduleBySessionRequest struct {
	SessionID    string    `json:"sessionId" binding:"required,uuid"`
	ScheduledFor time.Time `json:"scheduledFor" binding:"required"`
}

type PaymentCallbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
