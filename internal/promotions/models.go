package promotions

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Promotion is one redeemable discount code. Exactly one of PercentOff or
// CentsOff is set; percent applies before the result is floored at zero.
type Promotion struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Code       string         `gorm:"not null;uniqueIndex;size:32" json:"code"`
	PercentOff int            `gorm:"not null;default:0" json:"percent_off"`
	CentsOff   int            `gorm:"not null;default:0" json:"cents_off"`
	Active     bool           `gorm:"not null;default:true" json:"active"`
	ExpiresAt  *time.Time     `json:"expires_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Promotion) TableName() string {
	return "promotions"
}

// Expired reports whether the code has lapsed at the given instant.
func (p Promotion) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && now.After(*p.ExpiresAt)
}

type CreatePromotionRequest struct {
	Code       string     `json:"code" binding:"required,min=3,max=32"`
	PercentOff int        `json:"percent_off" binding:"omitempty,gte=1,lte=100"`
	CentsOff   int        `json:"cents_off" binding:"omitempty,gte=1"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

type ApplyPromotionRequest struct {
	Code       string `json:"code" binding:"required"`
	TotalCents int    `json:"total_cents" binding:"required,gte=0"`
}

type ApplyPromotionResponse struct {
	Code          string `json:"code"`
	OriginalCents int    `json:"original_cents"`
	DiscountCents int    `json:"discount_cents"`
	TotalCents    int    `json:"total_cents"`
}
