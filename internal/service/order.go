package service

import (
	"context"
	"time"

	"chatorder-service/internal/models"

	"github.com/google/uuid"
)

// OrderService is the order aggregate for one chat session: a lazily created
// pending order accumulating lines, checked out, cancelled or scheduled, with
// its total always recomputed from the lines.
type OrderService interface {
	// GetOpenOrder returns the session's pending order, nil when there is none.
	GetOpenOrder(ctx context.Context, sessionID uuid.UUID) (*models.Order, error)
	// AddItem merges quantity into an existing line for the same menu item or
	// creates a new line with the price snapshotted from the menu, creating
	// the order itself when none is open.
	AddItem(ctx context.Context, sessionID uuid.UUID, menuItemID int64, quantity int) (*models.Order, error)
	Checkout(ctx context.Context, sessionID uuid.UUID) (*models.Order, error)
	Cancel(ctx context.Context, sessionID uuid.UUID) error
	Schedule(ctx context.Context, sessionID uuid.UUID, scheduledFor time.Time) (*models.Order, error)
	// History returns the session's placed orders, most recent first.
	History(ctx context.Context, sessionID uuid.UUID) ([]models.Order, error)
	GetByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error)

	// SetStatus and SetPaymentReference record payment gateway outcomes; they
	// validate nothing beyond order existence.
	SetStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) error
	SetPaymentReference(ctx context.Context, orderID uuid.UUID, reference string) error
}
