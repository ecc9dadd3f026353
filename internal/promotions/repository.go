package promotions

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrPromotionNotFound = errors.New("promotion not found")

type Repository interface {
	Create(ctx context.Context, promotion *Promotion) error
	GetByCode(ctx context.Context, code string) (*Promotion, error)
	List(ctx context.Context) ([]Promotion, error)
	Update(ctx context.Context, promotion *Promotion) error
	DeleteByCode(ctx context.Context, code string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, promotion *Promotion) error {
	promotion.Code = strings.ToUpper(promotion.Code)
	return r.db.WithContext(ctx).Create(promotion).Error
}

func (r *repository) GetByCode(ctx context.Context, code string) (*Promotion, error) {
	var promotion Promotion
	err := r.db.WithContext(ctx).Where("code = ?", strings.ToUpper(code)).First(&promotion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, err
	}
	return &promotion, nil
}

func (r *repository) List(ctx context.Context) ([]Promotion, error) {
	var list []Promotion
	err := r.db.WithContext(ctx).Order("code").Find(&list).Error
	return list, err
}

func (r *repository) Update(ctx context.Context, promotion *Promotion) error {
	return r.db.WithContext(ctx).Save(promotion).Error
}

func (r *repository) DeleteByCode(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).Where("code = ?", strings.ToUpper(code)).Delete(&Promotion{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPromotionNotFound
	}
	return nil
}
