package service

import (
	"github.com/emunicipality/backend/internal/models"
	"github.com/emunicipality/backend/internal/repository"
	"github.com/emunicipality/backend/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DocTypeService struct {
	db          *gorm.DB
	docTypeRepo *repository.DocTypeRepository
	docRepo     *repository.DocumentRepository
}

func NewDocTypeService(db *gorm.DB, docTypeRepo *repository.DocTypeRepository, docRepo *repository.DocumentRepository) *DocTypeService {
	return &DocTypeService{
		db:          db,
		docTypeRepo: docTypeRepo,
		docRepo:     docRepo,
	}
}

// UpdateDocTypeInput carries optional fields for merge-patch updates
type UpdateDocTypeInput struct {
	Name        *string
	Description *string
}

func (s *DocTypeService) ListDocTypes() ([]models.DocumentType, error) {
	docTypes, err := s.docTypeRepo.GetAllDocTypes()
	if err != nil {
		logger.Log.Error("Failed to fetch document types", zap.Error(err))
		return nil, err
	}
	return docTypes, nil
}

func (s *DocTypeService) GetDocType(id uint) (*models.DocumentType, error) {
	docType, err := s.docTypeRepo.GetDocTypeByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch document type", zap.Uint("doctype_id", id), zap.Error(err))
		return nil, err
	}
	if docType == nil {
		return nil, &NotFoundError{Resource: "Document type"}
	}
	return docType, nil
}

func (s *DocTypeService) CreateDocType(name, description string) (*models.DocumentType, error) {
	if name == "" {
		return nil, &ValidationError{Message: "name is required"}
	}

	var docType *models.DocumentType

	err := s.db.Transaction(func(tx *gorm.DB) error {
		docTypes := repository.NewDocTypeRepository(tx)

		taken, err := docTypes.NameExists(name, 0)
		if err != nil {
			return err
		}
		if taken {
			return &ConflictError{Message: "Document type with this name already exists"}
		}

		docType = &models.DocumentType{
			Name:        name,
			Description: description,
		}
		return docTypes.CreateDocType(docType)
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Document type created",
		zap.Uint("doctype_id", docType.ID),
		zap.String("name", docType.Name),
	)

	return docType, nil
}

func (s *DocTypeService) UpdateDocType(id uint, in UpdateDocTypeInput) (*models.DocumentType, error) {
	var docType *models.DocumentType

	err := s.db.Transaction(func(tx *gorm.DB) error {
		docTypes := repository.NewDocTypeRepository(tx)

		var err error
		docType, err = docTypes.GetDocTypeByID(id)
		if err != nil {
			return err
		}
		if docType == nil {
			return &NotFoundError{Resource: "Document type"}
		}

		if in.Name != nil && *in.Name != docType.Name {
			taken, err := docTypes.NameExists(*in.Name, id)
			if err != nil {
				return err
			}
			if taken {
				return &ConflictError{Message: "Document type name already exists"}
			}
			docType.Name = *in.Name
		}
		if in.Description != nil {
			docType.Description = *in.Description
		}

		return docTypes.UpdateDocType(docType)
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Document type updated", zap.Uint("doctype_id", docType.ID))

	return docType, nil
}

func (s *DocTypeService) DeleteDocType(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		docTypes := repository.NewDocTypeRepository(tx)
		documents := repository.NewDocumentRepository(tx)

		docType, err := docTypes.GetDocTypeByID(id)
		if err != nil {
			return err
		}
		if docType == nil {
			return &NotFoundError{Resource: "Document type"}
		}

		referencing, err := documents.CountByDocTypeID(id)
		if err != nil {
			return err
		}
		if referencing > 0 {
			return &ReferentialBlockError{
				Message: "Cannot delete document type with existing documents. Please delete documents first.",
			}
		}

		return docTypes.DeleteDocType(id)
	})
	if err != nil {
		return err
	}

	logger.Log.Info("Document type deleted", zap.Uint("doctype_id", id))

	return nil
}
