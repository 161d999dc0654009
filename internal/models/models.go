package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation mode of a chat session. The mode disambiguates numeric input:
// in menu mode "1" means the first menu item, in main mode it opens the menu.
type SessionMode string

const (
	SessionModeMain SessionMode = "main"
	SessionModeMenu SessionMode = "menu"
)

type Session struct {
	ID       uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DeviceID string      `gorm:"type:text;not null;uniqueIndex" json:"deviceId"`
	Mode     SessionMode `gorm:"type:text;not null;default:'main'" json:"mode"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}

func (Session) TableName() string { return "sessions" }

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusScheduled OrderStatus = "scheduled"
)

type Order struct {
	ID               uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SessionID        uuid.UUID   `gorm:"type:uuid;not null;index" json:"sessionId"`
	Status           OrderStatus `gorm:"type:text;not null;default:'pending';index" json:"status"`
	TotalAmount      float64     `gorm:"type:numeric(10,2);not null;default:0" json:"totalAmount"`
	PaymentReference *string     `gorm:"type:text" json:"paymentReference,omitempty"`
	ScheduledFor     *time.Time  `json:"scheduledFor,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now();index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_order_items_order_menu_item" json:"orderId"`
	MenuItemID int64     `gorm:"not null;uniqueIndex:ux_order_items_order_menu_item" json:"menuItemId"`
	Quantity   int       `gorm:"type:int;not null" json:"quantity"`
	// Unit price snapshotted from the menu at the moment the line was added,
	// so later price changes never alter an open order.
	Price float64 `gorm:"type:numeric(10,2);not null" json:"price"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID" json:"menuItem,omitempty"`
}

func (OrderItem) TableName() string { return "order_items" }

type MenuItem struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"type:text;not null" json:"name"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Price       float64 `gorm:"type:numeric(10,2);not null" json:"price"`
	Available   bool    `gorm:"not null;default:true" json:"available"`
	Category    string  `gorm:"type:text" json:"category"`
}

func (MenuItem) TableName() string { return "menu_items" }
