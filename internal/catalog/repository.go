package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, resource *Resource) error
	GetByID(ctx context.Context, id uuid.UUID) (*Resource, error)
	GetAll(ctx context.Context) ([]Resource, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Resource, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountActiveByType(ctx context.Context, resourceType ResourceType) (int64, error)
	CountActiveAll(ctx context.Context) (map[ResourceType]int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, resource *Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Resource, error) {
	var resource Resource
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&resource).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return &resource, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Resource, error) {
	var resources []Resource
	err := r.db.WithContext(ctx).
		Order("type, display_order, label").
		Find(&resources).Error
	return resources, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Resource, error) {
	var resource Resource
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&resource).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&resource).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&resource).Error; err != nil {
		return nil, err
	}

	return &resource, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Resource{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResourceNotFound
	}
	return nil
}

func (r *repository) CountActiveByType(ctx context.Context, resourceType ResourceType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Resource{}).
		Where("type = ? AND active = true", resourceType).
		Count(&count).Error
	return count, err
}

func (r *repository) CountActiveAll(ctx context.Context) (map[ResourceType]int, error) {
	var rows []struct {
		Type  ResourceType
		Count int
	}
	err := r.db.WithContext(ctx).Model(&Resource{}).
		Select("type, count(*) as count").
		Where("active = true").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[ResourceType]int, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Count
	}
	return counts, nil
}
