package overrides

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrOverrideNotFound = errors.New("override not found")

type Repository interface {
	Upsert(ctx context.Context, override *DateOverride) error
	GetByDateKey(ctx context.Context, dateKey string) (*DateOverride, error)
	List(ctx context.Context) ([]DateOverride, error)
	DeleteByDateKey(ctx context.Context, dateKey string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, override *DateOverride) error {
	var existing DateOverride
	err := r.db.WithContext(ctx).Where("date_key = ?", override.DateKey).First(&existing).Error
	if err == nil {
		override.ID = existing.ID
		override.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(override).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.WithContext(ctx).Create(override).Error
}

func (r *repository) GetByDateKey(ctx context.Context, dateKey string) (*DateOverride, error) {
	var override DateOverride
	err := r.db.WithContext(ctx).Where("date_key = ?", dateKey).First(&override).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOverrideNotFound
		}
		return nil, err
	}
	return &override, nil
}

func (r *repository) List(ctx context.Context) ([]DateOverride, error) {
	var list []DateOverride
	err := r.db.WithContext(ctx).Order("date_key").Find(&list).Error
	return list, err
}

func (r *repository) DeleteByDateKey(ctx context.Context, dateKey string) error {
	result := r.db.WithContext(ctx).Where("date_key = ?", dateKey).Delete(&DateOverride{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOverrideNotFound
	}
	return nil
}
