package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"chatorder-service/internal/models"
	"chatorder-service/internal/repository"
	"chatorder-service/internal/service"

	"github.com/google/uuid"
)

// Mocks for the repository interfaces

type MockMenuItemRepo struct {
	ListAvailableFunc func(ctx context.Context) ([]models.MenuItem, error)
	GetByIDFunc       func(ctx context.Context, id int64) (*models.MenuItem, error)
	CountFunc         func(ctx context.Context) (int64, error)
	BulkCreateFunc    func(ctx context.Context, items []models.MenuItem) error
}

func (m *MockMenuItemRepo) ListAvailable(ctx context.Context) ([]models.MenuItem, error) {
	if m.ListAvailableFunc != nil {
		return m.ListAvailableFunc(ctx)
	}
	return nil, nil
}

func (m *MockMenuItemRepo) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMenuItemRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockMenuItemRepo) BulkCreate(ctx context.Context, items []models.MenuItem) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, items)
	}
	return nil
}

type MockOrderRepo struct {
	CreateFunc                 func(ctx context.Context, o *models.Order) error
	GetByIDFunc                func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetOpenBySessionFunc       func(ctx context.Context, sessionID uuid.UUID) (*models.Order, error)
	ListBySessionAndStatusFunc func(ctx context.Context, sessionID uuid.UUID, status models.OrderStatus) ([]models.Order, error)
	UpdateStatusFunc           func(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	UpdateTotalFunc            func(ctx context.Context, id uuid.UUID, total float64) error
	UpdatePaymentReferenceFunc func(ctx context.Context, id uuid.UUID, reference string) error
	UpdateScheduleFunc         func(ctx context.Context, id uuid.UUID, scheduledFor time.Time) error

	// Items is handed to the WithTx closure as the transactional item repo.
	Items *MockOrderItemRepo
}

func (m *MockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderRepo) GetOpenBySession(ctx context.Context, sessionID uuid.UUID) (*models.Order, error) {
	if m.GetOpenBySessionFunc != nil {
		return m.GetOpenBySessionFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *MockOrderRepo) ListBySessionAndStatus(ctx context.Context, sessionID uuid.UUID, status models.OrderStatus) ([]models.Order, error) {
	if m.ListBySessionAndStatusFunc != nil {
		return m.ListBySessionAndStatusFunc(ctx, sessionID, status)
	}
	return nil, nil
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockOrderRepo) UpdateTotal(ctx context.Context, id uuid.UUID, total float64) error {
	if m.UpdateTotalFunc != nil {
		return m.UpdateTotalFunc(ctx, id, total)
	}
	return nil
}

func (m *MockOrderRepo) UpdatePaymentReference(ctx context.Context, id uuid.UUID, reference string) error {
	if m.UpdatePaymentReferenceFunc != nil {
		return m.UpdatePaymentReferenceFunc(ctx, id, reference)
	}
	return nil
}

func (m *MockOrderRepo) UpdateSchedule(ctx context.Context, id uuid.UUID, scheduledFor time.Time) error {
	if m.UpdateScheduleFunc != nil {
		return m.UpdateScheduleFunc(ctx, id, scheduledFor)
	}
	return nil
}

func (m *MockOrderRepo) WithTx(ctx context.Context, fn func(txOrders repository.OrderRepo, txItems repository.OrderItemRepo) error) error {
	items := m.Items
	if items == nil {
		items = &MockOrderItemRepo{}
	}
	return fn(m, items)
}

type MockOrderItemRepo struct {
	CreateFunc                func(ctx context.Context, item *models.OrderItem) error
	GetByOrderAndMenuItemFunc func(ctx context.Context, orderID uuid.UUID, menuItemID int64) (*models.OrderItem, error)
	UpdateQuantityFunc        func(ctx context.Context, id uuid.UUID, quantity int) error
	GetByOrderIDFunc          func(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
	SumByOrderFunc            func(ctx context.Context, orderID uuid.UUID) (float64, error)
	DeleteByOrderIDFunc       func(ctx context.Context, orderID uuid.UUID) (int64, error)
}

func (m *MockOrderItemRepo) Create(ctx context.Context, item *models.OrderItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *MockOrderItemRepo) GetByOrderAndMenuItem(ctx context.Context, orderID uuid.UUID, menuItemID int64) (*models.OrderItem, error) {
	if m.GetByOrderAndMenuItemFunc != nil {
		return m.GetByOrderAndMenuItemFunc(ctx, orderID, menuItemID)
	}
	return nil, nil
}

func (m *MockOrderItemRepo) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	if m.UpdateQuantityFunc != nil {
		return m.UpdateQuantityFunc(ctx, id, quantity)
	}
	return nil
}

func (m *MockOrderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	if m.GetByOrderIDFunc != nil {
		return m.GetByOrderIDFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *MockOrderItemRepo) SumByOrder(ctx context.Context, orderID uuid.UUID) (float64, error) {
	if m.SumByOrderFunc != nil {
		return m.SumByOrderFunc(ctx, orderID)
	}
	return 0, nil
}

func (m *MockOrderItemRepo) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	if m.DeleteByOrderIDFunc != nil {
		return m.DeleteByOrderIDFunc(ctx, orderID)
	}
	return 0, nil
}

type MockSessionRepo struct {
	GetByDeviceIDFunc func(ctx context.Context, deviceID string) (*models.Session, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*models.Session, error)
	CreateFunc        func(ctx context.Context, s *models.Session) error
	GetOrCreateFunc   func(ctx context.Context, deviceID string) (*models.Session, error)
	UpdateModeFunc    func(ctx context.Context, id uuid.UUID, mode models.SessionMode) error
}

func (m *MockSessionRepo) GetByDeviceID(ctx context.Context, deviceID string) (*models.Session, error) {
	if m.GetByDeviceIDFunc != nil {
		return m.GetByDeviceIDFunc(ctx, deviceID)
	}
	return nil, nil
}

func (m *MockSessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSessionRepo) Create(ctx context.Context, s *models.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *MockSessionRepo) GetOrCreate(ctx context.Context, deviceID string) (*models.Session, error) {
	if m.GetOrCreateFunc != nil {
		return m.GetOrCreateFunc(ctx, deviceID)
	}
	return &models.Session{ID: uuid.New(), DeviceID: deviceID, Mode: models.SessionModeMain}, nil
}

func (m *MockSessionRepo) UpdateMode(ctx context.Context, id uuid.UUID, mode models.SessionMode) error {
	if m.UpdateModeFunc != nil {
		return m.UpdateModeFunc(ctx, id, mode)
	}
	return nil
}

type MockEventBus struct {
	PlacedEvents    []service.OrderPlacedEvent
	CancelledEvents []service.OrderCancelledEvent
	ScheduledEvents []service.OrderScheduledEvent
	PaidEvents      []service.OrderPaidEvent
}

func (m *MockEventBus) PublishOrderPlaced(ctx context.Context, ev service.OrderPlacedEvent) error {
	m.PlacedEvents = append(m.PlacedEvents, ev)
	return nil
}

func (m *MockEventBus) PublishOrderCancelled(ctx context.Context, ev service.OrderCancelledEvent) error {
	m.CancelledEvents = append(m.CancelledEvents, ev)
	return nil
}

func (m *MockEventBus) PublishOrderScheduled(ctx context.Context, ev service.OrderScheduledEvent) error {
	m.ScheduledEvents = append(m.ScheduledEvents, ev)
	return nil
}

func (m *MockEventBus) PublishOrderPaid(ctx context.Context, ev service.OrderPaidEvent) error {
	m.PaidEvents = append(m.PaidEvents, ev)
	return nil
}

func newRepository(sessions *MockSessionRepo, menu *MockMenuItemRepo, orders *MockOrderRepo, items *MockOrderItemRepo) *repository.Repository {
	orders.Items = items
	return &repository.Repository{
		Sessions:   sessions,
		MenuItems:  menu,
		Orders:     orders,
		OrderItems: items,
	}
}

var jollof = models.MenuItem{ID: 1, Name: "Jollof Rice", Description: "Delicious Nigerian jollof rice with chicken", Price: 2500, Available: true}

func TestOrderService_AddItem_MergesSameItem(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.New()
	orderID := uuid.New()

	var currentOrder *models.Order
	var line *models.OrderItem

	menu := &MockMenuItemRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.MenuItem, error) {
			if id == jollof.ID {
				item := jollof
				return &item, nil
			}
			return nil, nil
		},
	}
	items := &MockOrderItemRepo{
		GetByOrderAndMenuItemFunc: func(ctx context.Context, oID uuid.UUID, menuItemID int64) (*models.OrderItem, error) {
			if line != nil && line.MenuItemID == menuItemID {
				cp := *line
				return &cp, nil
			}
			return nil, nil
		},
		CreateFunc: func(ctx context.Context, item *models.OrderItem) error {
			item.ID = uuid.New()
			cp := *item
			line = &cp
			return nil
		},
		UpdateQuantityFunc: func(ctx context.Context, id uuid.UUID, quantity int) error {
			if line == nil || line.ID != id {
				t.Fatalf("UpdateQuantity for unknown line %s", id)
			}
			line.Quantity = quantity
			return nil
		},
		SumByOrderFunc: func(ctx context.Context, oID uuid.UUID) (float64, error) {
			if line == nil {
				return 0, nil
			}
			return line.Price * float64(line.Quantity), nil
		},
	}
	orders := &MockOrderRepo{
		GetOpenBySessionFunc: func(ctx context.Context, sID uuid.UUID) (*models.Order, error) {
			if currentOrder == nil {
				return nil, nil
			}
			cp := *currentOrder
			return &cp, nil
		},
		CreateFunc: func(ctx context.Context, o *models.Order) error {
			o.ID = orderID
			cp := *o
			currentOrder = &cp
			return nil
		},
		UpdateTotalFunc: func(ctx context.Context, id uuid.UUID, total float64) error {
			currentOrder.TotalAmount = total
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
			cp := *currentOrder
			if line != nil {
				cp.Items = []models.OrderItem{*line}
			}
			return &cp, nil
		},
	}

	svc := service.NewOrderService(newRepository(&MockSessionRepo{}, menu, orders, items), nil)

	first, err := svc.AddItem(ctx, sessionID, jollof.ID, 1)
	if err != nil {
		t.Fatalf("AddItem first: %v", err)
	}
	if first.ID != orderID || first.TotalAmount != 2500 {
		t.Fatalf("first add mismatch: %+v", first)
	}
	if len(first.Items) != 1 || first.Items[0].Quantity != 1 || first.Items[0].Price != 2500 {
		t.Fatalf("first line mismatch: %+v", first.Items)
	}

	// Adding the same item again merges into the existing line
	second, err := svc.AddItem(ctx, sessionID, jollof.ID, 2)
	if err != nil {
		t.Fatalf("AddItem second: %v", err)
	}
	if len(second.Items) != 1 || second.Items[0].Quantity != 3 {
		t.Fatalf("merge mismatch: %+v", second.Items)
	}
	if second.TotalAmount != 7500 {
		t.Fatalf("total expected 7500 got %v", second.TotalAmount)
	}
}

func TestOrderService_AddItem_Validation(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.New()

	menu := &MockMenuItemRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.MenuItem, error) {
			switch id {
			case 1:
				item := jollof
				return &item, nil
			case 2:
				return &models.MenuItem{ID: 2, Name: "Pepper Soup", Price: 2000, Available: false}, nil
			}
			return nil, nil
		},
	}
	svc := service.NewOrderService(newRepository(&MockSessionRepo{}, menu, &MockOrderRepo{}, &MockOrderItemRepo{}), nil)

	if _, err := svc.AddItem(ctx, sessionID, 1, 0); !errors.Is(err, service.ErrQuantityInvalid) {
		t.Fatalf("zero quantity: expected ErrQuantityInvalid got %v", err)
	}
	if _, err := svc.AddItem(ctx, sessionID, 1, -3); !errors.Is(err, service.ErrQuantityInvalid) {
		t.Fatalf("negative quantity: expected ErrQuantityInvalid got %v", err)
	}
	if _, err := svc.AddItem(ctx, sessionID, 99, 1); !errors.Is(err, service.ErrMenuItemNotFound) {
		t.Fatalf("unknown item: expected ErrMenuItemNotFound got %v", err)
	}
	if _, err := svc.AddItem(ctx, sessionID, 2, 1); !errors.Is(err, service.ErrMenuItemUnavailable) {
		t.Fatalf("unavailable item: expected ErrMenuItemUnavailable got %v", err)
	}
}

func TestOrderService_Checkout(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.New()
	orderID := uuid.New()

	statusUpdates := 0

	t.Run("no open order", func(t *testing.T) {
		orders := &MockOrderRepo{
			UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
				statusUpdates++
				return nil
			},
		}
		svc := service.NewOrderService(newRepository(&MockSessionRepo{}, &MockMenuItemRepo{}, orders, &MockOrderItemRepo{}), nil)
		if _, err := svc.Checkout(ctx, sessionID); !errors.Is(err, service.ErrNoOpenOrder) {
			t.Fatalf("expected ErrNoOpenOrder got %v", err)
		}
		if statusUpdates != 0 {
			t.Fatalf("status must not change, got %d updates", statusUpdates)
		}
	})

	t.Run("empty order", func(t *testing.T) {
		orders := &MockOrderRepo{
			GetOpenBySessionFunc: func(ctx context.Context, sID uuid.UUID) (*models.Order, error) {
				return &models.Order{ID: orderID, SessionID: sessionID, Status: models.OrderStatusPending}, nil
			},
			UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
				statusUpdates++
				return nil
			},
		}
		svc := service.NewOrderService(newRepository(&MockSessionRepo{}, &MockMenuItemRepo{}, orders, &MockOrderItemRepo{}), nil)
		if _, err := svc.Checkout(ctx, sessionID); !errors.Is(err, service.ErrEmptyOrder) {
			t.Fatalf("expected ErrEmptyOrder got %v", err)
		}
		if statusUpdates != 0 {
			t.Fatalf("status must not change, got %d updates", statusUpdates)
		}
	})

	t.Run("success publishes event", func(t *testing.T) {
		item := models.OrderItem{ID: uuid.New(), OrderID: orderID, MenuItemID: jollof.ID, Quantity: 3, Price: 2500, MenuItem: &jollof}
		status := models.OrderStatusPending
		orders := &MockOrderRepo{
			GetOpenBySessionFunc: func(ctx context.Context, sID uuid.UUID) (*models.Order, error) {
				return &models.Order{ID: orderID, SessionID: sessionID, Status: status, TotalAmount: 7500, Items: []models.OrderItem{item}}, nil
			},
			UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, st models.OrderStatus) error {
				status = st
				return nil
			},
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
				return &models.Order{ID: orderID, SessionID: sessionID, Status: status, TotalAmount: 7500, Items: []models.OrderItem{item}}, nil
			},
		}
		events := &MockEventBus{}
		svc := service.NewOrderService(newRepository(&MockSessionRepo{}, &MockMenuItemRepo{}, orders, &MockOrderItemRepo{}), events)

		placed, err := svc.Checkout(ctx, sessionID)
		if err != nil {
			t.Fatalf("Checkout: %v", err)
		}
		if placed.Status != models.OrderStatusPlaced {
			t.Fatalf("status expected placed got %s", placed.Status)
		}
		if len(events.PlacedEvents) != 1 {
			t.Fatalf("expected 1 placed event got %d", len(events.PlacedEvents))
		}
		ev := events.PlacedEvents[0]
		if ev.OrderID != orderID || ev.TotalAmount != 7500 {
			t.Fatalf("event mismatch: %+v", ev)
		}
		if len(ev.Items) != 1 || ev.Items[0].Name != "Jollof Rice" || ev.Items[0].LineTotal != 7500 {
			t.Fatalf("event items mismatch: %+v", ev.Items)
		}
	})
}

func TestOrderService_Cancel(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.New()
	orderID := uuid.New()

	var updated *models.OrderStatus
	orders := &MockOrderRepo{
		GetOpenBySessionFunc: func(ctx context.Context, sID uuid.UUID) (*models.Order, error) {
			return &models.Order{ID: orderID, SessionID: sessionID, Status: models.OrderStatusPending}, nil
		},
		UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
			updated = &status
			return nil
		},
	}
	events := &MockEventBus{}
	svc := service.NewOrderService(newRepository(&MockSessionRepo{}, &MockMenuItemRepo{}, orders, &MockOrderItemRepo{}), events)

	if err := svc.Cancel(ctx, sessionID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if updated == nil || *updated != models.OrderStatusCancelled {
		t.Fatalf("expected cancelled status update, got %v", updated)
	}
	if len(events.CancelledEvents) != 1 || events.CancelledEvents[0].OrderID != orderID {
		t.Fatalf("cancelled event mismatch: %+v", events.CancelledEvents)
	}

	none := service.NewOrderService(newRepository(&MockSessionRepo{}, &MockMenuItemRepo{}, &MockOrderRepo{}, &MockOrderItemRepo{}), nil)
	if err := none.Cancel(ctx, sessionID); !errors.Is(err, service.ErrNoOpenOrder) {
		t.Fatalf("expected ErrNoOpenOrder got %v", err)
	}
}

func TestOrderService_Schedule(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.New()
	orderID := uuid.New()
	item := models.OrderItem{ID: uuid.New(), OrderID: orderID, MenuItemID: jollof.ID, Quantity: 1, Price: 2500}

	scheduleCalls := 0
	var scheduled *models.Order
	orders := &MockOrderRepo{
		GetOpenBySessionFunc: func(ctx context.Context, sID uuid.UUID) (*models.Order, error) {
			return &models.Order{ID: orderID, SessionID: sessionID, Status: models.OrderStatusPending, TotalAmount: 2500, Items: []models.OrderItem{item}}, nil
		},
		UpdateScheduleFunc: func(ctx context.Context, id uuid.UUID, when time.Time) error {
			scheduleCalls++
			scheduled = &models.Order{ID: orderID, SessionID: sessionID, Status: models.OrderStatusScheduled, TotalAmount: 2500, ScheduledFor: &when, Items: []models.OrderItem{item}}
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
			return scheduled, nil
		},
	}
	events := &MockEventBus{}
	svc := service.NewOrderService(newRepository(&MockSessionRepo{}, &MockMenuItemRepo{}, orders, &MockOrderItemRepo{}), events)

	// A past timestamp is rejected and nothing is written
	if _, err := svc.Schedule(ctx, sessionID, time.Now().Add(-time.Hour)); !errors.Is(err, service.ErrScheduleNotFuture) {
		t.Fatalf("past schedule: expected ErrScheduleNotFuture got %v", err)
	}
	if scheduleCalls != 0 {
		t.Fatalf("schedule must not be written for past timestamps")
	}

	when := time.Now().Add(3 * time.Hour)
	got, err := svc.Schedule(ctx, sessionID, when)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if got.Status != models.OrderStatusScheduled || got.ScheduledFor == nil {
		t.Fatalf("schedule result mismatch: %+v", got)
	}
	if len(events.ScheduledEvents) != 1 || !events.ScheduledEvents[0].ScheduledFor.Equal(when) {
		t.Fatalf("scheduled event mismatch: %+v", events.ScheduledEvents)
	}
}

func TestOrderService_History(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.New()

	var askedStatus models.OrderStatus
	orders := &MockOrderRepo{
		ListBySessionAndStatusFunc: func(ctx context.Context, sID uuid.UUID, status models.OrderStatus) ([]models.Order, error) {
			askedStatus = status
			return []models.Order{{ID: uuid.New(), SessionID: sID, Status: status}}, nil
		},
	}
	svc := service.NewOrderService(newRepository(&MockSessionRepo{}, &MockMenuItemRepo{}, orders, &MockOrderItemRepo{}), nil)

	list, err := svc.History(ctx, sessionID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("history expected 1 got %d", len(list))
	}
	if askedStatus != models.OrderStatusPlaced {
		t.Fatalf("history must list placed orders, asked for %s", askedStatus)
	}
}
