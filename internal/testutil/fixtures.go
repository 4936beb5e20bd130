package testutil

import (
	"time"

	"github.com/emunicipality/backend/internal/models"
)

// CreateTestUser builds an unsaved user row with an opaque credential
func CreateTestUser(username, email string, role models.Role) *models.User {
	return &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "test-credential",
		Role:         role,
		CreatedAt:    time.Now(),
	}
}

// CreateTestDocType builds an unsaved document type row
func CreateTestDocType(name, description string) *models.DocumentType {
	return &models.DocumentType{
		Name:        name,
		Description: description,
	}
}

// CreateTestDocument builds an unsaved document row in the given status
func CreateTestDocument(userID, docTypeID uint, status models.DocumentStatus) *models.Document {
	return &models.Document{
		UserID:      userID,
		DocTypeID:   docTypeID,
		Status:      status,
		RequestDate: time.Now(),
	}
}
