package db

import (
	"log"
	"time"

	"github.com/ironfit-labs/gym-platform/internal/config"
	"github.com/ironfit-labs/gym-platform/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Member{},
		&models.Trainer{},
		&models.Product{},
		&models.Booking{},
		&models.Payment{},
		&models.Feedback{},
		&models.WorkoutLog{},
		&models.MealLog{},
		&models.ProgressEntry{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Second line of defense for the slot invariant: only active bookings
	// count, so a cancelled row never blocks a rebooking. Races between two
	// writers for the same slot are settled here, not by the pre-check.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_slot
        ON bookings (trainer_id, date, time_slot)
        WHERE status IN ('pending', 'confirmed')
    `)

	return db
}
