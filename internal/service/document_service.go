package service

import (
	"time"

	"github.com/emunicipality/backend/internal/metrics"
	"github.com/emunicipality/backend/internal/models"
	"github.com/emunicipality/backend/internal/repository"
	"github.com/emunicipality/backend/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DocumentService struct {
	db          *gorm.DB
	docRepo     *repository.DocumentRepository
	userRepo    *repository.UserRepository
	docTypeRepo *repository.DocTypeRepository
}

func NewDocumentService(db *gorm.DB, docRepo *repository.DocumentRepository, userRepo *repository.UserRepository, docTypeRepo *repository.DocTypeRepository) *DocumentService {
	return &DocumentService{
		db:          db,
		docRepo:     docRepo,
		userRepo:    userRepo,
		docTypeRepo: docTypeRepo,
	}
}

// UpdateDocumentInput carries optional fields for merge-patch updates;
// nil fields keep their stored values
type UpdateDocumentInput struct {
	UserID    *uint
	DocTypeID *uint
	Status    *models.DocumentStatus
	IssueDate *time.Time
	Notes     *string
}

// ListDocuments returns every document, enriched, newest requests first.
// An empty store yields an empty slice, not an error.
func (s *DocumentService) ListDocuments() ([]models.EnrichedDocument, error) {
	documents, err := s.docRepo.GetAllDocuments()
	if err != nil {
		logger.Log.Error("Failed to fetch documents", zap.Error(err))
		return nil, err
	}
	return documents, nil
}

func (s *DocumentService) GetDocument(id uint) (*models.EnrichedDocument, error) {
	document, err := s.docRepo.GetEnrichedDocument(id)
	if err != nil {
		logger.Log.Error("Failed to fetch document", zap.Uint("document_id", id), zap.Error(err))
		return nil, err
	}
	if document == nil {
		return nil, &NotFoundError{Resource: "Document"}
	}
	return document, nil
}

// ListDocumentsByUser returns one user's documents. Unlike the document list,
// the owning user is checked first so an unknown user id is a 404, not an
// empty list.
func (s *DocumentService) ListDocumentsByUser(userID uint) ([]models.EnrichedDocument, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		logger.Log.Error("Failed to fetch user", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Resource: "User"}
	}

	documents, err := s.docRepo.GetDocumentsByUserID(userID)
	if err != nil {
		logger.Log.Error("Failed to fetch user documents", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return documents, nil
}

// CreateDocument validates both references and inserts the request with
// status pending and a server-assigned request date. Validation reads and
// the insert share one transaction.
func (s *DocumentService) CreateDocument(userID, docTypeID uint, notes *string) (*models.EnrichedDocument, error) {
	if userID == 0 {
		return nil, &ValidationError{Message: "user_id is required"}
	}
	if docTypeID == 0 {
		return nil, &ValidationError{Message: "doctype_id is required"}
	}

	var document *models.Document

	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		docTypes := repository.NewDocTypeRepository(tx)
		documents := repository.NewDocumentRepository(tx)

		user, err := users.GetUserByID(userID)
		if err != nil {
			return err
		}
		if user == nil {
			return &NotFoundError{Resource: "User"}
		}

		docType, err := docTypes.GetDocTypeByID(docTypeID)
		if err != nil {
			return err
		}
		if docType == nil {
			return &NotFoundError{Resource: "Document type"}
		}

		document = &models.Document{
			UserID:      userID,
			DocTypeID:   docTypeID,
			Status:      models.StatusPending,
			RequestDate: time.Now(),
			Notes:       notes,
		}
		return documents.CreateDocument(document)
	})
	if err != nil {
		return nil, err
	}

	metrics.DocumentsCreatedTotal.Inc()
	logger.Log.Info("Document created",
		zap.Uint("document_id", document.ID),
		zap.Uint("user_id", userID),
		zap.Uint("doctype_id", docTypeID),
	)

	return s.GetDocument(document.ID)
}

// UpdateDocument applies merge-patch semantics: only the provided fields
// change, and provided references must resolve
func (s *DocumentService) UpdateDocument(id uint, in UpdateDocumentInput) (*models.EnrichedDocument, error) {
	if in.Status != nil && !models.ValidStatus(*in.Status) {
		return nil, &ValidationError{
			Message: "Invalid status. Must be one of: pending, approved, rejected, in_progress",
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		docTypes := repository.NewDocTypeRepository(tx)
		documents := repository.NewDocumentRepository(tx)

		document, err := documents.GetDocument(id)
		if err != nil {
			return err
		}
		if document == nil {
			return &NotFoundError{Resource: "Document"}
		}

		if in.UserID != nil {
			user, err := users.GetUserByID(*in.UserID)
			if err != nil {
				return err
			}
			if user == nil {
				return &NotFoundError{Resource: "User"}
			}
			document.UserID = *in.UserID
		}

		if in.DocTypeID != nil {
			docType, err := docTypes.GetDocTypeByID(*in.DocTypeID)
			if err != nil {
				return err
			}
			if docType == nil {
				return &NotFoundError{Resource: "Document type"}
			}
			document.DocTypeID = *in.DocTypeID
		}

		if in.Status != nil {
			document.Status = *in.Status
		}
		if in.IssueDate != nil {
			document.IssueDate = in.IssueDate
		}
		if in.Notes != nil {
			document.Notes = in.Notes
		}

		return documents.UpdateDocument(document)
	})
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		metrics.DocumentStatusUpdatesTotal.WithLabelValues(string(*in.Status)).Inc()
	}
	logger.Log.Info("Document updated", zap.Uint("document_id", id))

	return s.GetDocument(id)
}

func (s *DocumentService) DeleteDocument(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		documents := repository.NewDocumentRepository(tx)

		document, err := documents.GetDocument(id)
		if err != nil {
			return err
		}
		if document == nil {
			return &NotFoundError{Resource: "Document"}
		}

		return documents.DeleteDocument(id)
	})
	if err != nil {
		return err
	}

	logger.Log.Info("Document deleted", zap.Uint("document_id", id))

	return nil
}
