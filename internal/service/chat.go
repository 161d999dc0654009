package service

import (
	"context"
	"time"

	"chatorder-service/internal/models"

	"github.com/google/uuid"
)

type MenuOption struct {
	Number      int     `json:"number"`
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Reply is the structured payload returned for every chat turn.
type Reply struct {
	Message         string         `json:"message"`
	Options         string         `json:"options,omitempty"`
	MenuItems       []MenuOption   `json:"menuItems,omitempty"`
	Order           *models.Order  `json:"order,omitempty"`
	Orders          []models.Order `json:"orders,omitempty"`
	PaymentRequired bool           `json:"paymentRequired,omitempty"`
}

// ChatService interprets numeric chat input against the session's
// conversation mode and drives the order aggregate accordingly.
type ChatService interface {
	GetOrCreateSession(ctx context.Context, deviceID string) (*models.Session, error)
	ProcessMessage(ctx context.Context, deviceID, message string) (*Reply, error)
	ScheduleOrder(ctx context.Context, deviceID string, scheduledFor time.Time) (*Reply, error)
	InitializePaymentForOrder(ctx context.Context, orderID uuid.UUID, email string) (*PaymentInitResult, error)
}
