package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Bovice22/axequacks-app-sub000/internal/users"
)

type Repository interface {
	CreateStaff(ctx context.Context, staff *users.Staff) error
	GetStaffByEmail(ctx context.Context, email string) (*users.Staff, error)
	GetStaffByID(ctx context.Context, id string) (*users.Staff, error)
	UpdateStaffPassword(ctx context.Context, staffID string, hashedPassword string) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) CreateStaff(ctx context.Context, staff *users.Staff) error {
	if err := r.db.WithContext(ctx).Create(staff).Error; err != nil {
		return err
	}
	return nil
}

func (r *repository) GetStaffByEmail(ctx context.Context, email string) (*users.Staff, error) {
	var staff users.Staff
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return &staff, nil
}

func (r *repository) GetStaffByID(ctx context.Context, id string) (*users.Staff, error) {
	var staff users.Staff
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return &staff, nil
}

func (r *repository) UpdateStaffPassword(ctx context.Context, staffID string, hashedPassword string) error {
	result := r.db.WithContext(ctx).Model(&users.Staff{}).
		Where("id = ?", staffID).
		Update("password", hashedPassword)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrStaffNotFound
	}

	return nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&users.Staff{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
