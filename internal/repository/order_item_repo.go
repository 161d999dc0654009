package repository

import (
	"context"
	"errors"

	"chatorder-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderItemRepo interface {
	Create(ctx context.Context, item *models.OrderItem) error
	GetByOrderAndMenuItem(ctx context.Context, orderID uuid.UUID, menuItemID int64) (*models.OrderItem, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
	// SumByOrder computes the order total from its lines in SQL, so total and
	// lines never drift apart.
	SumByOrder(ctx context.Context, orderID uuid.UUID) (float64, error)
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error)
}

type orderItemRepo struct{ db *gorm.DB }

func NewOrderItemRepo(db *gorm.DB) OrderItemRepo { return &orderItemRepo{db: db} }

func (r *orderItemRepo) Create(ctx context.Context, item *models.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *orderItemRepo) GetByOrderAndMenuItem(ctx context.Context, orderID uuid.UUID, menuItemID int64) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND menu_item_id = ?", orderID, menuItemID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *orderItemRepo) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).Model(&models.OrderItem{}).Where("id = ?", id).Update("quantity", quantity).Error
}

func (r *orderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	var rows []models.OrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("created_at ASC").Find(&rows).Error
	return rows, err
}

func (r *orderItemRepo) SumByOrder(ctx context.Context, orderID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.OrderItem{}).
		Select("COALESCE(SUM(price * quantity), 0)").
		Where("order_id = ?", orderID).
		Scan(&total).Error
	return total, err
}

func (r *orderItemRepo) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&models.OrderItem{})
	return tx.RowsAffected, tx.Error
}
