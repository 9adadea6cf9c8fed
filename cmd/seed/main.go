// Command seed loads the built-in card catalog into PostgreSQL and
// creates the initial admin account. Safe to re-run: cards are upserted
// and an existing admin is left alone.
package main

import (
	"context"
	"log"
	"os"

	"wallzy/internal/catalog"
	"wallzy/internal/config"
	"wallzy/internal/models"
	"wallzy/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Printf("⚠️ Failed to close PostgreSQL connection: %v", err)
				}
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}
	}()

	if err := catalog.Seed(repositories.DB); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	log.Printf("✅ Seeded %d catalog cards", len(catalog.Cards()))

	// Seeded rates supersede whatever a previous run cached.
	if repositories.CacheService != nil {
		if err := repositories.CacheService.InvalidateCatalog(context.Background(),
			models.CatalogSetCommon, models.CatalogSetStudent); err != nil {
			log.Printf("⚠️ Failed to invalidate catalog cache: %v", err)
		}
	}

	seedAdmin()
}

func seedAdmin() {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin creation")
		return
	}

	var existing models.User
	if err := repositories.DB.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Println("Admin user already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		Email:        adminEmail,
		Password:     string(hashed),
		Name:         "Admin",
		Role:         "admin",
		Status:       "active",
		TokenVersion: 1,
	}
	if err := repositories.DB.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Println("✅ Admin account created successfully!")
}
