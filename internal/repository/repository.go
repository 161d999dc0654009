package repository

import "gorm.io/gorm"

type Repository struct {
	DB         *gorm.DB
	Sessions   SessionRepo
	MenuItems  MenuItemRepo
	Orders     OrderRepo
	OrderItems OrderItemRepo
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:         db,
		Sessions:   NewSessionRepo(db),
		MenuItems:  NewMenuItemRepo(db),
		Orders:     NewOrderRepo(db),
		OrderItems: NewOrderItemRepo(db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }
