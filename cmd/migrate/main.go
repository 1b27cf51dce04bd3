package main

import (
	"seeds-backend/internal/app/ds"
	"seeds-backend/internal/app/dsn"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Info("Connected to database successfully")

	if err := db.AutoMigrate(ds.Models()...); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Info("Database migration completed successfully")
}
