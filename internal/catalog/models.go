package catalog

import (
	"time"

	"github.com/google/uuid"
)

// ResourceType is the closed set of bookable capacity categories. Units of a
// type are fungible: the engine only ever counts free units, it never assigns
// a guest to a specific bay or lane (that is the persistence layer's concern).
type ResourceType string

const (
	TypeAxeBay      ResourceType = "AXE_BAY"
	TypeDuckpinLane ResourceType = "DUCKPIN_LANE"
	TypePartyArea   ResourceType = "PARTY_AREA"
)

func (t ResourceType) IsValid() bool {
	switch t {
	case TypeAxeBay, TypeDuckpinLane, TypePartyArea:
		return true
	}
	return false
}

func (t ResourceType) String() string {
	return string(t)
}

// Resource is one physical unit of capacity (one bay, one lane, one area).
type Resource struct {
	ID           uuid.UUID    `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Type         ResourceType `json:"type" gorm:"type:varchar(20);not null;index"`
	Label        string       `json:"label" gorm:"not null;size:100"`
	Active       bool         `json:"active" gorm:"not null;default:true"`
	DisplayOrder int          `json:"display_order" gorm:"not null;default:0"`
	CreatedAt    time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Resource) TableName() string {
	return "resources"
}

// OperatingWindow is a half-open minute interval [OpenMin, CloseMin) in
// venue-local time. All engine times are integer minutes from local midnight.
type OperatingWindow struct {
	OpenMin  int `json:"open_min"`
	CloseMin int `json:"close_min"`
}

// Minutes returns the window length.
func (w OperatingWindow) Minutes() int {
	return w.CloseMin - w.OpenMin
}
