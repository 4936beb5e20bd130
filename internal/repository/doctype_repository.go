package repository

import (
	"errors"

	"github.com/emunicipality/backend/internal/models"
	"gorm.io/gorm"
)

type DocTypeRepository struct {
	db *gorm.DB
}

func NewDocTypeRepository(db *gorm.DB) *DocTypeRepository {
	return &DocTypeRepository{db: db}
}

func (r *DocTypeRepository) CreateDocType(docType *models.DocumentType) error {
	return r.db.Create(docType).Error
}

func (r *DocTypeRepository) GetDocTypeByID(id uint) (*models.DocumentType, error) {
	var docType models.DocumentType
	err := r.db.Where("doctype_id = ?", id).First(&docType).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &docType, nil
}

// GetAllDocTypes returns the catalog ordered alphabetically
func (r *DocTypeRepository) GetAllDocTypes() ([]models.DocumentType, error) {
	var docTypes []models.DocumentType
	err := r.db.Order("name ASC").Find(&docTypes).Error
	if err != nil {
		return nil, err
	}
	return docTypes, nil
}

// NameExists checks whether another document type already holds the given name
func (r *DocTypeRepository) NameExists(name string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.DocumentType{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("doctype_id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DocTypeRepository) UpdateDocType(docType *models.DocumentType) error {
	return r.db.Save(docType).Error
}

func (r *DocTypeRepository) DeleteDocType(id uint) error {
	return r.db.Delete(&models.DocumentType{}, id).Error
}
