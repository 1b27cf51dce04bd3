package main

import (
	"context"
	"fmt"

	"seeds-backend/internal/app/dsn"
	"seeds-backend/internal/app/repository"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Lists every license with its seed image URL.
func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	res := repository.NewWithDB(db).ListLicenses(context.Background())
	if res.Error != nil {
		log.Fatal("Failed to get licenses:", res.Error)
	}

	fmt.Println("Licenses in database:")
	for _, l := range res.Data {
		imageURL := "NULL"
		if l.Image != nil {
			imageURL = *l.Image
		}
		payment := "NULL"
		if l.Payment != nil {
			payment = *l.Payment
		}
		fmt.Printf("ID: %d, Client: %s, Payment: %s, Image: %s\n", l.ID, l.Client, payment, imageURL)
	}
}
