package repository

import (
	"context"
	"errors"

	"chatorder-service/internal/models"

	"gorm.io/gorm"
)

type MenuItemRepo interface {
	ListAvailable(ctx context.Context) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)
	Count(ctx context.Context) (int64, error)
	BulkCreate(ctx context.Context, items []models.MenuItem) error
}

type menuItemRepo struct{ db *gorm.DB }

func NewMenuItemRepo(db *gorm.DB) MenuItemRepo { return &menuItemRepo{db: db} }

func (r *menuItemRepo) ListAvailable(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).Where("available = ?", true).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *menuItemRepo) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *menuItemRepo) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.MenuItem{}).Count(&cnt).Error
	return cnt, err
}

func (r *menuItemRepo) BulkCreate(ctx context.Context, items []models.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}
