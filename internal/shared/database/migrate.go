package database

import (
	"gorm.io/gorm"

	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
	"github.com/Bovice22/axequacks-app-sub000/internal/overrides"
	"github.com/Bovice22/axequacks-app-sub000/internal/promotions"
	"github.com/Bovice22/axequacks-app-sub000/internal/reservations"
	"github.com/Bovice22/axequacks-app-sub000/internal/users"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.Staff{},
		&catalog.Resource{},
		&overrides.DateOverride{},
		&promotions.Promotion{},
		&reservations.Booking{},
		&reservations.ReservationInterval{},
		&reservations.Payment{},
	)
}
