package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type OrderItemEvent struct {
	MenuItemID int64   `json:"menu_item_id"`
	Name       string  `json:"name,omitempty"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	LineTotal  float64 `json:"line_total"`
}

type OrderPlacedEvent struct {
	OrderID     uuid.UUID        `json:"order_id"`
	SessionID   uuid.UUID        `json:"session_id"`
	Items       []OrderItemEvent `json:"items"`
	TotalAmount float64          `json:"total_amount"`
	PlacedAt    time.Time        `json:"placed_at"`
}

type OrderCancelledEvent struct {
	OrderID     uuid.UUID `json:"order_id"`
	SessionID   uuid.UUID `json:"session_id"`
	CancelledAt time.Time `json:"cancelled_at"`
}

type OrderScheduledEvent struct {
	OrderID      uuid.UUID `json:"order_id"`
	SessionID    uuid.UUID `json:"session_id"`
	TotalAmount  float64   `json:"total_amount"`
	ScheduledFor time.Time `json:"scheduled_for"`
}

type OrderPaidEvent struct {
	OrderID     uuid.UUID `json:"order_id"`
	SessionID   uuid.UUID `json:"session_id"`
	TotalAmount float64   `json:"total_amount"`
	Reference   string    `json:"reference"`
	PaidAt      time.Time `json:"paid_at"`
}

// EventBus publishes order lifecycle events. A nil bus disables publishing;
// publish failures never fail the originating operation.
type EventBus interface {
	PublishOrderPlaced(ctx context.Context, e OrderPlacedEvent) error
	PublishOrderCancelled(ctx context.Context, e OrderCancelledEvent) error
	PublishOrderScheduled(ctx context.Context, e OrderScheduledEvent) error
	PublishOrderPaid(ctx context.Context, e OrderPaidEvent) error
}
