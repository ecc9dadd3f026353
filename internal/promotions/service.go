package promotions

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrPromotionInactive = errors.New("promotion is not active")
	ErrPromotionExpired  = errors.New("promotion has expired")
	ErrInvalidPromotion  = errors.New("promotion must set exactly one of percent_off or cents_off")
)

type Service interface {
	// Apply discounts a pre-computed total. Runs after, never inside, the
	// pricing computation; the quoted breakdown stays untouched.
	Apply(ctx context.Context, code string, totalCents int) (*ApplyPromotionResponse, error)

	Create(ctx context.Context, req CreatePromotionRequest) (*Promotion, error)
	List(ctx context.Context) ([]Promotion, error)
	Deactivate(ctx context.Context, code string) error
	Delete(ctx context.Context, code string) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Apply(ctx context.Context, code string, totalCents int) (*ApplyPromotionResponse, error) {
	promotion, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if !promotion.Active {
		return nil, ErrPromotionInactive
	}
	if promotion.Expired(s.now()) {
		return nil, ErrPromotionExpired
	}

	discount := promotion.CentsOff
	if promotion.PercentOff > 0 {
		discount = totalCents * promotion.PercentOff / 100
	}
	if discount > totalCents {
		discount = totalCents
	}

	return &ApplyPromotionResponse{
		Code:          promotion.Code,
		OriginalCents: totalCents,
		DiscountCents: discount,
		TotalCents:    totalCents - discount,
	}, nil
}

func (s *service) Create(ctx context.Context, req CreatePromotionRequest) (*Promotion, error) {
	if (req.PercentOff > 0) == (req.CentsOff > 0) {
		return nil, ErrInvalidPromotion
	}

	promotion := &Promotion{
		Code:       req.Code,
		PercentOff: req.PercentOff,
		CentsOff:   req.CentsOff,
		Active:     true,
		ExpiresAt:  req.ExpiresAt,
	}

	if err := s.repo.Create(ctx, promotion); err != nil {
		return nil, fmt.Errorf("failed to create promotion: %w", err)
	}
	return promotion, nil
}

func (s *service) List(ctx context.Context) ([]Promotion, error) {
	return s.repo.List(ctx)
}

func (s *service) Deactivate(ctx context.Context, code string) error {
	promotion, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	promotion.Active = false
	return s.repo.Update(ctx, promotion)
}

func (s *service) Delete(ctx context.Context, code string) error {
	return s.repo.DeleteByCode(ctx, code)
}
