package services

import (
	"testing"

	"github.com/iamomal/nutrivision-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. The pool is pinned
// to one connection so the in-memory database is not silently dropped
// between statements.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&models.User{},
		&models.FoodNutrition{},
		&models.UserGoal{},
		&models.FoodLog{},
		&models.WeeklyProgress{},
		&models.UserAchievement{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
