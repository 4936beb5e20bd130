package main

import (
	"errors"
	"log"
	"os"

	"github.com/emunicipality/backend/internal/config"
	"github.com/emunicipality/backend/internal/database"
	"github.com/emunicipality/backend/internal/models"
	"gorm.io/gorm"
)

// Seeds the document type catalog and an initial admin account.
// Safe to run repeatedly: existing rows are left untouched.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	docTypes := []models.DocumentType{
		{Name: "Birth Certificate", Description: "Official copy of a municipal birth record"},
		{Name: "Marriage Certificate", Description: "Official copy of a municipal marriage record"},
		{Name: "Residence Certificate", Description: "Proof of registered residence in the municipality"},
		{Name: "Building Permit", Description: "Authorization for construction or renovation work"},
		{Name: "Business License", Description: "Permit to operate a business within the municipality"},
	}

	for _, dt := range docTypes {
		var existing models.DocumentType
		err := db.Where("name = ?", dt.Name).First(&existing).Error
		if err == nil {
			log.Println("Document type already exists:", dt.Name)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal("Failed to check document type:", err)
		}
		if err := db.Create(&dt).Error; err != nil {
			log.Fatal("Failed to create document type:", err)
		}
		log.Println("Document type created:", dt.Name)
	}

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminUsername == "" || adminEmail == "" || adminPassword == "" {
		log.Println("Skipping admin seed: ADMIN_USERNAME, ADMIN_EMAIL, ADMIN_PASSWORD not set")
		return
	}

	var admin models.User
	if err := db.Where("email = ?", adminEmail).First(&admin).Error; err == nil {
		log.Println("Admin user already exists:", admin.Username)
		return
	}

	// ADMIN_PASSWORD is expected to be a pre-hashed credential; this API
	// stores it opaquely
	admin = models.User{
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: adminPassword,
		Role:         models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Println("Admin user created:", admin.Username)
}
