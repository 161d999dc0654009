package repository

import (
	"context"
	"errors"

	"chatorder-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepo interface {
	GetByDeviceID(ctx context.Context, deviceID string) (*models.Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Create(ctx context.Context, s *models.Session) error
	// GetOrCreate is the fetch-or-insert keyed by device id. The upsert keeps
	// concurrent first contacts from the same device from racing on the
	// unique index.
	GetOrCreate(ctx context.Context, deviceID string) (*models.Session, error)
	UpdateMode(ctx context.Context, id uuid.UUID, mode models.SessionMode) error
}

type sessionRepo struct{ db *gorm.DB }

func NewSessionRepo(db *gorm.DB) SessionRepo { return &sessionRepo{db: db} }

func (r *sessionRepo) GetByDeviceID(ctx context.Context, deviceID string) (*models.Session, error) {
	var s models.Session
	err := r.db.WithContext(ctx).First(&s, "device_id = ?", deviceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &s, err
}

func (r *sessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	var s models.Session
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &s, err
}

func (r *sessionRepo) Create(ctx context.Context, s *models.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sessionRepo) GetOrCreate(ctx context.Context, deviceID string) (*models.Session, error) {
	s := models.Session{DeviceID: deviceID, Mode: models.SessionModeMain}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "device_id"}}, DoNothing: true}).
		Create(&s).Error
	if err != nil {
		return nil, err
	}
	// DoNothing leaves the struct zeroed on conflict, re-read either way
	return r.GetByDeviceID(ctx, deviceID)
}

func (r *sessionRepo) UpdateMode(ctx context.Context, id uuid.UUID, mode models.SessionMode) error {
	return r.db.WithContext(ctx).Model(&models.Session{}).Where("id = ?", id).Update("mode", mode).Error
}
