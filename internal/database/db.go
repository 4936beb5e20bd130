package database

import (
	"github.com/emunicipality/backend/internal/config"
	"github.com/emunicipality/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the PostgreSQL connection and returns the handle.
// The handle is passed explicitly to repositories (no package-global pool).
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the users, document_types and documents tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.DocumentType{}, &models.Document{})
}
