package services

import (
	"testing"

	"project/backend/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	// A pooled second connection to :memory: would see an empty database.
	sqlDB.SetMaxOpenConns(1)

	if err := utils.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
