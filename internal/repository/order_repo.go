package repository

import (
	"context"
	"errors"
	"time"

	"chatorder-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepo interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// GetOpenBySession returns the most recent pending order for the session,
	// nil when there is none.
	GetOpenBySession(ctx context.Context, sessionID uuid.UUID) (*models.Order, error)
	ListBySessionAndStatus(ctx context.Context, sessionID uuid.UUID, status models.OrderStatus) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	UpdateTotal(ctx context.Context, id uuid.UUID, total float64) error
	UpdatePaymentReference(ctx context.Context, id uuid.UUID, reference string) error
	UpdateSchedule(ctx context.Context, id uuid.UUID, scheduledFor time.Time) error

	WithTx(ctx context.Context, fn func(txOrders OrderRepo, txItems OrderItemRepo) error) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.created_at ASC") }).
		Preload("Items.MenuItem").
		First(&ord, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) GetOpenBySession(ctx context.Context, sessionID uuid.UUID) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.created_at ASC") }).
		Preload("Items.MenuItem").
		Where("session_id = ? AND status = ?", sessionID, models.OrderStatusPending).
		Order("created_at DESC").
		First(&ord).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) ListBySessionAndStatus(ctx context.Context, sessionID uuid.UUID, status models.OrderStatus) ([]models.Order, error) {
	var list []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.created_at ASC") }).
		Preload("Items.MenuItem").
		Where("session_id = ? AND status = ?", sessionID, status).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *orderRepo) UpdateTotal(ctx context.Context, id uuid.UUID, total float64) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("total_amount", total).Error
}

func (r *orderRepo) UpdatePaymentReference(ctx context.Context, id uuid.UUID, reference string) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("payment_reference", reference).Error
}

func (r *orderRepo) UpdateSchedule(ctx context.Context, id uuid.UUID, scheduledFor time.Time) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(map[string]any{
		"status":        models.OrderStatusScheduled,
		"scheduled_for": scheduledFor,
	}).Error
}

func (r *orderRepo) WithTx(ctx context.Context, fn func(txOrders OrderRepo, txItems OrderItemRepo) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderRepo{db: tx}, &orderItemRepo{db: tx})
	})
}
