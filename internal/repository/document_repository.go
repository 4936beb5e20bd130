package repository

import (
	"errors"

	"github.com/emunicipality/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// enrichedColumns selects document columns plus display fields from the
// joined user and document type rows
const enrichedColumns = "d.*, u.username AS user_name, u.email AS user_email, " +
	"dt.name AS doctype_name, dt.description AS doctype_description"

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// enriched builds the base join query for all enriched document reads
func (r *DocumentRepository) enriched() *gorm.DB {
	return r.db.Table("documents d").
		Select(enrichedColumns).
		Joins("JOIN users u ON d.user_id = u.user_id").
		Joins("JOIN document_types dt ON d.doctype_id = dt.doctype_id")
}

func (r *DocumentRepository) CreateDocument(document *models.Document) error {
	// Associations are read-only here; never upsert user/doctype rows
	return r.db.Omit(clause.Associations).Create(document).Error
}

// GetDocument retrieves the raw document row, without enrichment
func (r *DocumentRepository) GetDocument(id uint) (*models.Document, error) {
	var document models.Document
	err := r.db.Where("document_id = ?", id).First(&document).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &document, nil
}

// GetEnrichedDocument retrieves one document joined with user and doctype fields
func (r *DocumentRepository) GetEnrichedDocument(id uint) (*models.EnrichedDocument, error) {
	var documents []models.EnrichedDocument
	err := r.enriched().Where("d.document_id = ?", id).Scan(&documents).Error
	if err != nil {
		return nil, err
	}
	if len(documents) == 0 {
		return nil, nil
	}
	return &documents[0], nil
}

// GetAllDocuments returns all documents, enriched, newest requests first
func (r *DocumentRepository) GetAllDocuments() ([]models.EnrichedDocument, error) {
	documents := []models.EnrichedDocument{}
	err := r.enriched().Order("d.request_date DESC").Scan(&documents).Error
	return documents, err
}

// GetDocumentsByUserID returns one user's documents, enriched, newest requests first
func (r *DocumentRepository) GetDocumentsByUserID(userID uint) ([]models.EnrichedDocument, error) {
	documents := []models.EnrichedDocument{}
	err := r.enriched().
		Where("d.user_id = ?", userID).
		Order("d.request_date DESC").
		Scan(&documents).Error
	return documents, err
}

func (r *DocumentRepository) UpdateDocument(document *models.Document) error {
	return r.db.Omit(clause.Associations).Save(document).Error
}

func (r *DocumentRepository) DeleteDocument(id uint) error {
	return r.db.Delete(&models.Document{}, id).Error
}

// CountByUserID counts documents referencing a user (referential-block checks)
func (r *DocumentRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Document{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountByDocTypeID counts documents referencing a document type
func (r *DocumentRepository) CountByDocTypeID(docTypeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Document{}).Where("doctype_id = ?", docTypeID).Count(&count).Error
	return count, err
}
