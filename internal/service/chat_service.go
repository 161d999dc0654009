package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"chatorder-service/internal/models"
	"chatorder-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// The five main-menu options, reused verbatim across replies.
const mainMenuOptions = `Select 1 to place an order
Select 99 to checkout order
Select 98 to see order history
Select 97 to see current order
Select 0 to cancel order`

const greeting = "Welcome to our Restaurant Chatbot! 👋\n\nHow can I help you today?"

// Input protocol is digits-only; anything else gets the greeting.
var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

type chatService struct {
	sessions repository.SessionRepo
	menu     MenuService
	orders   OrderService
	payments PaymentService
	log      *zap.Logger

	// Serializes turns per device so a double-send cannot race on the same
	// session's order.
	deviceLocks sync.Map // deviceID -> *sync.Mutex
}

func NewChatService(sessions repository.SessionRepo, menu MenuService, orders OrderService, payments PaymentService, log *zap.Logger) ChatService {
	return &chatService{
		sessions: sessions,
		menu:     menu,
		orders:   orders,
		payments: payments,
		log:      log,
	}
}

func (s *chatService) lockDevice(deviceID string) *sync.Mutex {
	mu, _ := s.deviceLocks.LoadOrStore(deviceID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m
}

func (s *chatService) GetOrCreateSession(ctx context.Context, deviceID string) (*models.Session, error) {
	return s.sessions.GetOrCreate(ctx, deviceID)
}

func (s *chatService) ProcessMessage(ctx context.Context, deviceID, message string) (*Reply, error) {
	mu := s.lockDevice(deviceID)
	defer mu.Unlock()

	session, err := s.sessions.GetOrCreate(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	input := strings.TrimSpace(message)
	if !digitsOnly.MatchString(input) {
		return s.mainMenu(), nil
	}

	number, err := strconv.Atoi(input)
	if err != nil {
		return s.mainMenu(), nil
	}

	// In menu mode 1..N are item positions; the global shortcuts still work
	// and anything else drops back to the main menu.
	if session.Mode == models.SessionModeMenu {
		if isShortcut(number) {
			if err := s.setMode(ctx, session, models.SessionModeMain); err != nil {
				return nil, err
			}
			return s.handleMenuOption(ctx, session, number)
		}

		items, err := s.menu.List(ctx)
		if err != nil {
			return nil, err
		}
		if number >= 1 && number <= len(items) {
			return s.handleMenuItemSelection(ctx, session, number)
		}

		if err := s.setMode(ctx, session, models.SessionModeMain); err != nil {
			return nil, err
		}
		return s.mainMenu(), nil
	}

	if number == 1 || isShortcut(number) {
		return s.handleMenuOption(ctx, session, number)
	}

	// Power users can pick an item number without browsing first.
	return s.handleMenuItemSelection(ctx, session, number)
}

func isShortcut(n int) bool {
	return n == 0 || n == 97 || n == 98 || n == 99
}

func (s *chatService) setMode(ctx context.Context, session *models.Session, mode models.SessionMode) error {
	if session.Mode == mode {
		return nil
	}
	if err := s.sessions.UpdateMode(ctx, session.ID, mode); err != nil {
		return err
	}
	session.Mode = mode
	return nil
}

func (s *chatService) handleMenuOption(ctx context.Context, session *models.Session, option int) (*Reply, error) {
	switch option {
	case 1:
		return s.handlePlaceOrder(ctx, session)
	case 99:
		return s.handleCheckout(ctx, session)
	case 98:
		return s.handleOrderHistory(ctx, session)
	case 97:
		return s.handleCurrentOrder(ctx, session)
	case 0:
		return s.handleCancelOrder(ctx, session)
	default:
		return &Reply{
			Message: "Invalid option. Please select a valid option.",
			Options: mainMenuOptions,
		}, nil
	}
}

func (s *chatService) handlePlaceOrder(ctx context.Context, session *models.Session) (*Reply, error) {
	items, err := s.menu.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return &Reply{
			Message: "Sorry, no menu items available at the moment.",
			Options: mainMenuOptions,
		}, nil
	}

	// Enter menu mode so the next "1" means the first item, not this option.
	if err := s.setMode(ctx, session, models.SessionModeMenu); err != nil {
		return nil, err
	}

	return &Reply{
		Message: fmt.Sprintf(
			"Here are our available menu items:\n\n%s\n\nPlease select an item by number, or type any other number to return to main menu.",
			formatMenuText(items),
		),
		MenuItems: menuOptions(items),
	}, nil
}

func (s *chatService) handleMenuItemSelection(ctx context.Context, session *models.Session, itemNumber int) (*Reply, error) {
	items, err := s.menu.List(ctx)
	if err != nil {
		return nil, err
	}

	if itemNumber < 1 || itemNumber > len(items) {
		return &Reply{
			Message: "Invalid selection. Please select a valid menu item number.",
			Options: mainMenuOptions,
		}, nil
	}

	selected := items[itemNumber-1]

	order, err := s.orders.AddItem(ctx, session.ID, selected.ID, 1)
	if err != nil {
		if reply := recoverDomainError(err); reply != nil {
			return reply, nil
		}
		return nil, err
	}

	return &Reply{
		Message: fmt.Sprintf(
			"✅ %s added to your order!\n\n%s\n\nAvailable menu items:\n%s\n\nSelect another item number to add more, or use a shortcut:\nSelect 99 to checkout order\nSelect 97 to see current order\nSelect 0 to cancel order.",
			selected.Name,
			formatOrderSummary(order),
			formatMenuText(items),
		),
		Order: order,
	}, nil
}

func (s *chatService) handleCheckout(ctx context.Context, session *models.Session) (*Reply, error) {
	order, err := s.orders.Checkout(ctx, session.ID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoOpenOrder):
			return &Reply{
				Message: "❌ No order to place. Please add items to your order first.",
				Options: mainMenuOptions,
			}, nil
		case errors.Is(err, ErrEmptyOrder):
			return &Reply{
				Message: "❌ Your order is empty. Please add items to your order first.",
				Options: mainMenuOptions,
			}, nil
		default:
			return nil, err
		}
	}

	return &Reply{
		Message:         "✅ Order placed successfully!\n\nWould you like to proceed with payment?",
		Order:           order,
		PaymentRequired: true,
		Options:         mainMenuOptions,
	}, nil
}

func (s *chatService) handleOrderHistory(ctx context.Context, session *models.Session) (*Reply, error) {
	orders, err := s.orders.History(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return &Reply{
			Message: "You have no order history yet.",
			Options: mainMenuOptions,
		}, nil
	}

	lines := make([]string, 0, len(orders))
	for i, order := range orders {
		itemNames := make([]string, 0, len(order.Items))
		for _, item := range order.Items {
			itemNames = append(itemNames, fmt.Sprintf("%dx %s", item.Quantity, menuItemName(item)))
		}
		lines = append(lines, fmt.Sprintf(
			"%d. Order #%s - ₦%.2f - %s",
			i+1, shortID(order.ID), order.TotalAmount, strings.Join(itemNames, ", "),
		))
	}

	return &Reply{
		Message: fmt.Sprintf("Your Order History:\n\n%s\n\n%s", strings.Join(lines, "\n"), mainMenuOptions),
		Orders:  orders,
	}, nil
}

func (s *chatService) handleCurrentOrder(ctx context.Context, session *models.Session) (*Reply, error) {
	order, err := s.orders.GetOpenOrder(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	if order == nil || len(order.Items) == 0 {
		return &Reply{
			Message: "You have no current order.",
			Options: mainMenuOptions,
		}, nil
	}

	return &Reply{
		Message: fmt.Sprintf("Your Current Order:\n\n%s\n\n%s", formatOrderSummary(order), mainMenuOptions),
		Order:   order,
	}, nil
}

func (s *chatService) handleCancelOrder(ctx context.Context, session *models.Session) (*Reply, error) {
	if err := s.orders.Cancel(ctx, session.ID); err != nil {
		if errors.Is(err, ErrNoOpenOrder) {
			return &Reply{
				Message: "❌ No order to cancel.",
				Options: mainMenuOptions,
			}, nil
		}
		return nil, err
	}

	return &Reply{
		Message: "✅ Order cancelled successfully.",
		Options: mainMenuOptions,
	}, nil
}

func (s *chatService) ScheduleOrder(ctx context.Context, deviceID string, scheduledFor time.Time) (*Reply, error) {
	mu := s.lockDevice(deviceID)
	defer mu.Unlock()

	session, err := s.sessions.GetOrCreate(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.Schedule(ctx, session.ID, scheduledFor)
	if err != nil {
		if reply := recoverDomainError(err); reply != nil {
			return reply, nil
		}
		return nil, err
	}

	return &Reply{
		Message: fmt.Sprintf(
			"✅ Order scheduled successfully for %s!\n\n%s",
			scheduledFor.Format("Mon, 02 Jan 2006 15:04"),
			mainMenuOptions,
		),
		Order: order,
	}, nil
}

func (s *chatService) InitializePaymentForOrder(ctx context.Context, orderID uuid.UUID, email string) (*PaymentInitResult, error) {
	return s.payments.Initialize(ctx, orderID, email)
}

// recoverDomainError turns a domain error into a user-facing reply, nil when
// the error is not a domain condition and should propagate.
func recoverDomainError(err error) *Reply {
	for _, domain := range []error{
		ErrMenuItemNotFound,
		ErrMenuItemUnavailable,
		ErrQuantityInvalid,
		ErrNoOpenOrder,
		ErrEmptyOrder,
		ErrScheduleNotFuture,
	} {
		if errors.Is(err, domain) {
			return &Reply{
				Message: fmt.Sprintf("❌ Error: %s", domain.Error()),
				Options: mainMenuOptions,
			}
		}
	}
	return nil
}

func (s *chatService) mainMenu() *Reply {
	return &Reply{
		Message: greeting,
		Options: mainMenuOptions,
	}
}

func menuOptions(items []models.MenuItem) []MenuOption {
	opts := make([]MenuOption, 0, len(items))
	for i, item := range items {
		opts = append(opts, MenuOption{
			Number:      i + 1,
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
		})
	}
	return opts
}

func formatMenuText(items []models.MenuItem) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("Select %d for %s - ₦%.2f (%s)", i+1, item.Name, item.Price, item.Description))
	}
	return strings.Join(lines, "\n")
}

func formatOrderSummary(order *models.Order) string {
	if order == nil || len(order.Items) == 0 {
		return "Your order is empty."
	}

	lines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("  • %dx %s - ₦%.2f", item.Quantity, menuItemName(item), item.Price*float64(item.Quantity)))
	}

	return fmt.Sprintf("Items:\n%s\n\nTotal: ₦%.2f", strings.Join(lines, "\n"), order.TotalAmount)
}

func menuItemName(item models.OrderItem) string {
	if item.MenuItem != nil {
		return item.MenuItem.Name
	}
	return "Unknown"
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
