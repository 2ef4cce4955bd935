package database

import (
	"fmt"
	"log"
	"os"

	"salesdash-backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Connect() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment as-is")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		envOr("DB_HOST", "localhost"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		envOr("DB_PORT", "5432"),
		envOr("DB_SSLMODE", "disable"))

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("could not connect to database: " + err.Error())
	}
}

func AutoMigrate() {
	if err := DB.AutoMigrate(&models.Call{}, &models.Eoc{}, &models.BookedCall{}); err != nil {
		panic("automigrate failed: " + err.Error())
	}
}
