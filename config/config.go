package config

import (
	"log"
	"os"

	"github.com/iamomal/nutrivision-backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB connects to DATABASE_URL (PostgreSQL) or, when unset, to a local
// SQLite file for development. The backend choice is made here and only
// here; everything downstream sees a plain *gorm.DB.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var dialector gorm.Dialector
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "nutrivision.db"
		}
		log.Printf("DATABASE_URL not set, falling back to SQLite at %s", path)
		dialector = sqlite.Open(path)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.FoodNutrition{},
		&models.UserGoal{},
		&models.FoodLog{},
		&models.WeeklyProgress{},
		&models.UserAchievement{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
