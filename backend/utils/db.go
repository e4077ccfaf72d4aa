package utils

import (
	"fmt"

	"project/backend/config"
	"project/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Migrate creates or updates all tables. Shared with the test setup, which
// runs it against an in-memory sqlite database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.OnboardingData{},
		&models.WorkoutSession{},
		&models.Exercise{},
		&models.WaterIntake{},
		&models.StretchReminder{},
		&models.StudySession{},
		&models.StudyTask{},
		&models.StudyStreak{},
		&models.FocusSession{},
		&models.GratitudeEntry{},
		&models.MoodCheckin{},
		&models.StressJournal{},
	)
}
