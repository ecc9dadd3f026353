package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
	"github.com/Bovice22/axequacks-app-sub000/internal/promotions"
	"github.com/Bovice22/axequacks-app-sub000/internal/shared/config"
	"github.com/Bovice22/axequacks-app-sub000/internal/shared/database"
	"github.com/Bovice22/axequacks-app-sub000/internal/users"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting AxeQuacks Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"payments",
		"reservation_intervals",
		"bookings",
		"promotions",
		"date_overrides",
		"resources",
		"staff",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	if err := s.SeedStaff(); err != nil {
		return fmt.Errorf("failed to seed staff: %w", err)
	}

	if err := s.SeedResources(); err != nil {
		return fmt.Errorf("failed to seed resources: %w", err)
	}

	if err := s.SeedPromotions(); err != nil {
		return fmt.Errorf("failed to seed promotions: %w", err)
	}

	// Clear Redis so stale availability scans and holds don't survive a reseed
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedStaff creates 1 admin and 2 counter staff accounts
func (s *Seeder) SeedStaff() error {
	fmt.Println("  👤 Seeding staff...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	staffData := []struct {
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"Admin", "User", "admin@axequacks.com", users.RoleAdmin},
		{"Morgan", "Reyes", "morgan@axequacks.com", users.RoleStaff},
		{"Sam", "Whitfield", "sam@axequacks.com", users.RoleStaff},
	}

	for _, data := range staffData {
		staff := users.Staff{
			ID:        uuid.New(),
			FirstName: data.firstName,
			LastName:  data.lastName,
			Email:     data.email,
			Password:  string(hashedPassword),
			Role:      data.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&staff).Error; err != nil {
			return fmt.Errorf("failed to create staff %s: %w", data.email, err)
		}

		fmt.Printf("    ✅ Created staff: %s (%s)\n", staff.Email, staff.Role)
	}

	return nil
}

// SeedResources creates the venue's physical capacity: 4 axe bays, 6 duckpin
// lanes and 2 party areas
func (s *Seeder) SeedResources() error {
	fmt.Println("  🪓 Seeding resources...")

	resourceData := []struct {
		resourceType catalog.ResourceType
		labelFormat  string
		count        int
	}{
		{catalog.TypeAxeBay, "Axe Bay %d", 4},
		{catalog.TypeDuckpinLane, "Duckpin Lane %d", 6},
		{catalog.TypePartyArea, "Party Area %d", 2},
	}

	order := 0
	for _, data := range resourceData {
		for i := 1; i <= data.count; i++ {
			order++
			resource := catalog.Resource{
				ID:           uuid.New(),
				Type:         data.resourceType,
				Label:        fmt.Sprintf(data.labelFormat, i),
				Active:       true,
				DisplayOrder: order,
			}

			if err := s.db.PostgreSQL.Create(&resource).Error; err != nil {
				return fmt.Errorf("failed to create resource %s: %w", resource.Label, err)
			}
		}
		fmt.Printf("    ✅ Created %d x %s\n", data.count, data.resourceType)
	}

	return nil
}

// SeedPromotions creates sample discount codes
func (s *Seeder) SeedPromotions() error {
	fmt.Println("  🎟️ Seeding promotions...")

	in30Days := time.Now().AddDate(0, 0, 30)

	promotionData := []promotions.Promotion{
		{ID: uuid.New(), Code: "WELCOME10", PercentOff: 10, Active: true},
		{ID: uuid.New(), Code: "BIRTHDAY25", PercentOff: 25, Active: true, ExpiresAt: &in30Days},
		{ID: uuid.New(), Code: "FIVEOFF", CentsOff: 500, Active: true},
	}

	for _, promo := range promotionData {
		if err := s.db.PostgreSQL.Create(&promo).Error; err != nil {
			return fmt.Errorf("failed to create promotion %s: %w", promo.Code, err)
		}
		fmt.Printf("    ✅ Created promotion: %s\n", promo.Code)
	}

	return nil
}
