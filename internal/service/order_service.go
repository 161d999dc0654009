package service

import (
	"context"
	"time"

	"chatorder-service/internal/models"
	"chatorder-service/internal/repository"

	"github.com/google/uuid"
)

type orderService struct {
	repo   *repository.Repository
	events EventBus
	now    func() time.Time
}

func NewOrderService(repo *repository.Repository, events EventBus) OrderService {
	return &orderService{
		repo:   repo,
		events: events,
		now:    time.Now,
	}
}

func (s *orderService) GetOpenOrder(ctx context.Context, sessionID uuid.UUID) (*models.Order, error) {
	return s.repo.Orders.GetOpenBySession(ctx, sessionID)
}

func (s *orderService) AddItem(ctx context.Context, sessionID uuid.UUID, menuItemID int64, quantity int) (*models.Order, error) {
	if quantity <= 0 {
		return nil, ErrQuantityInvalid
	}

	menuItem, err := s.repo.MenuItems.GetByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if menuItem == nil {
		return nil, ErrMenuItemNotFound
	}
	if !menuItem.Available {
		return nil, ErrMenuItemUnavailable
	}

	var orderID uuid.UUID

	// Line mutation and total recompute are one atomic unit, so the stored
	// total can never drift from the lines.
	err = s.repo.Orders.WithTx(ctx, func(txOrders repository.OrderRepo, txItems repository.OrderItemRepo) error {
		order, err := txOrders.GetOpenBySession(ctx, sessionID)
		if err != nil {
			return err
		}
		if order == nil {
			order = &models.Order{
				SessionID:   sessionID,
				Status:      models.OrderStatusPending,
				TotalAmount: 0,
				CreatedAt:   s.now(),
				UpdatedAt:   s.now(),
			}
			if err := txOrders.Create(ctx, order); err != nil {
				return err
			}
		}
		orderID = order.ID

		line, err := txItems.GetByOrderAndMenuItem(ctx, order.ID, menuItem.ID)
		if err != nil {
			return err
		}
		if line != nil {
			if err := txItems.UpdateQuantity(ctx, line.ID, line.Quantity+quantity); err != nil {
				return err
			}
		} else {
			if err := txItems.Create(ctx, &models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: menuItem.ID,
				Quantity:   quantity,
				Price:      menuItem.Price,
				CreatedAt:  s.now(),
			}); err != nil {
				return err
			}
		}

		total, err := txItems.SumByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		return txOrders.UpdateTotal(ctx, order.ID, total)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.Orders.GetByID(ctx, orderID)
}

func (s *orderService) Checkout(ctx context.Context, sessionID uuid.UUID) (*models.Order, error) {
	order, err := s.repo.Orders.GetOpenBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNoOpenOrder
	}
	if len(order.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	if err := s.repo.Orders.UpdateStatus(ctx, order.ID, models.OrderStatusPlaced); err != nil {
		return nil, err
	}
	order, err = s.repo.Orders.GetByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		evItems := make([]OrderItemEvent, 0, len(order.Items))
		for _, it := range order.Items {
			name := ""
			if it.MenuItem != nil {
				name = it.MenuItem.Name
			}
			evItems = append(evItems, OrderItemEvent{
				MenuItemID: it.MenuItemID,
				Name:       name,
				Quantity:   it.Quantity,
				Price:      it.Price,
				LineTotal:  it.Price * float64(it.Quantity),
			})
		}
		_ = s.events.PublishOrderPlaced(ctx, OrderPlacedEvent{
			OrderID:     order.ID,
			SessionID:   order.SessionID,
			Items:       evItems,
			TotalAmount: order.TotalAmount,
			PlacedAt:    s.now(),
		})
	}

	return order, nil
}

func (s *orderService) Cancel(ctx context.Context, sessionID uuid.UUID) error {
	order, err := s.repo.Orders.GetOpenBySession(ctx, sessionID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrNoOpenOrder
	}

	if err := s.repo.Orders.UpdateStatus(ctx, order.ID, models.OrderStatusCancelled); err != nil {
		return err
	}

	if s.events != nil {
		_ = s.events.PublishOrderCancelled(ctx, OrderCancelledEvent{
			OrderID:     order.ID,
			SessionID:   order.SessionID,
			CancelledAt: s.now(),
		})
	}

	return nil
}

func (s *orderService) Schedule(ctx context.Context, sessionID uuid.UUID, scheduledFor time.Time) (*models.Order, error) {
	order, err := s.repo.Orders.GetOpenBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNoOpenOrder
	}
	if len(order.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if !scheduledFor.After(s.now()) {
		return nil, ErrScheduleNotFuture
	}

	if err := s.repo.Orders.UpdateSchedule(ctx, order.ID, scheduledFor); err != nil {
		return nil, err
	}
	order, err = s.repo.Orders.GetByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		_ = s.events.PublishOrderScheduled(ctx, OrderScheduledEvent{
			OrderID:      order.ID,
			SessionID:    order.SessionID,
			TotalAmount:  order.TotalAmount,
			ScheduledFor: scheduledFor,
		})
	}

	return order, nil
}

func (s *orderService) History(ctx context.Context, sessionID uuid.UUID) ([]models.Order, error) {
	return s.repo.Orders.ListBySessionAndStatus(ctx, sessionID, models.OrderStatusPlaced)
}

func (s *orderService) GetByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.repo.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) SetStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) error {
	order, err := s.repo.Orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	return s.repo.Orders.UpdateStatus(ctx, orderID, status)
}

func (s *orderService) SetPaymentReference(ctx context.Context, orderID uuid.UUID, reference string) error {
	order, err := s.repo.Orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	return s.repo.Orders.UpdatePaymentReference(ctx, orderID, reference)
}
