package overrides

import (
	"time"

	"github.com/google/uuid"

	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
)

// DateOverride is an admin-granted exception for one calendar date: an
// alternate operating window (typically wider, or opening a dark day) and/or
// suppression of a blackout. The engine never validates credentials; grants
// are authorized here, behind admin auth, and handed to the engine as input.
type DateOverride struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	DateKey          string     `json:"date_key" gorm:"uniqueIndex;not null;size:10"`
	OpenMin          int        `json:"open_min" gorm:"not null"`
	CloseMin         int        `json:"close_min" gorm:"not null"`
	SuppressBlackout bool       `json:"suppress_blackout" gorm:"not null;default:false"`
	Note             string     `json:"note" gorm:"size:500"`
	CreatedBy        uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (DateOverride) TableName() string {
	return "date_overrides"
}

// Window resolves the override to an operating window. A blackout
// suppression granted without explicit hours opens the date with the
// standard evening window.
func (o *DateOverride) Window() catalog.OperatingWindow {
	if o.SuppressBlackout && o.OpenMin == 0 && o.CloseMin == 0 {
		return catalog.BlackoutLiftWindow()
	}
	return catalog.OperatingWindow{OpenMin: o.OpenMin, CloseMin: o.CloseMin}
}

type CreateOverrideRequest struct {
	DateKey          string `json:"date_key" binding:"required,len=10"`
	OpenMin          int    `json:"open_min" binding:"min=0,max=1440"`
	CloseMin         int    `json:"close_min" binding:"omitempty,min=1,max=1440"`
	SuppressBlackout bool   `json:"suppress_blackout"`
	Note             string `json:"note" binding:"max=500"`
}
