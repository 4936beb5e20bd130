package handler

import (
	"strconv"
	"time"

	"github.com/emunicipality/backend/internal/models"
	"github.com/emunicipality/backend/internal/service"
	"github.com/emunicipality/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	documentService *service.DocumentService
	verbose         bool
}

func NewDocumentHandler(documentService *service.DocumentService, verbose bool) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		verbose:         verbose,
	}
}

type CreateDocumentRequest struct {
	UserID    uint    `json:"user_id"`
	DocTypeID uint    `json:"doctype_id"`
	Notes     *string `json:"notes"`
}

type UpdateDocumentRequest struct {
	UserID    *uint      `json:"user_id"`
	DocTypeID *uint      `json:"doctype_id"`
	Status    *string    `json:"status"`
	IssueDate *time.Time `json:"issue_date"`
	Notes     *string    `json:"notes"`
}

// parseIDParam reads a positive numeric path parameter; on failure it writes
// the 400 envelope itself and reports false
func parseIDParam(c *gin.Context, name, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		respondValidation(c, "Invalid "+label)
		return 0, false
	}
	return uint(id), true
}

// GetAllDocuments returns all documents with user and doctype information
// GET /api/documents
func (h *DocumentHandler) GetAllDocuments(c *gin.Context) {
	documents, err := h.documentService.ListDocuments()
	if err != nil {
		respondError(c, err, "Error fetching documents", h.verbose)
		return
	}
	respondList(c, documents, len(documents))
}

// GetDocumentByID returns a single enriched document
// GET /api/documents/:id
func (h *DocumentHandler) GetDocumentByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document ID")
	if !ok {
		return
	}

	document, err := h.documentService.GetDocument(id)
	if err != nil {
		respondError(c, err, "Error fetching document", h.verbose)
		return
	}
	respondOK(c, "", document)
}

// GetDocumentsByUserID returns one user's documents
// GET /api/documents/user/:userId
func (h *DocumentHandler) GetDocumentsByUserID(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", "user ID")
	if !ok {
		return
	}

	documents, err := h.documentService.ListDocumentsByUser(userID)
	if err != nil {
		respondError(c, err, "Error fetching user documents", h.verbose)
		return
	}
	respondList(c, documents, len(documents))
}

// CreateDocument creates a new document request
// POST /api/documents
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Document creation request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		respondValidation(c, "Invalid request body")
		return
	}

	document, err := h.documentService.CreateDocument(req.UserID, req.DocTypeID, req.Notes)
	if err != nil {
		respondError(c, err, "Error creating document", h.verbose)
		return
	}
	respondCreated(c, "Document created successfully", document)
}

// UpdateDocument applies a merge-patch update to a document
// PUT /api/documents/:id
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document ID")
	if !ok {
		return
	}

	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Document update request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		respondValidation(c, "Invalid request body")
		return
	}

	in := service.UpdateDocumentInput{
		UserID:    req.UserID,
		DocTypeID: req.DocTypeID,
		IssueDate: req.IssueDate,
		Notes:     req.Notes,
	}
	if req.Status != nil {
		status := models.DocumentStatus(*req.Status)
		in.Status = &status
	}

	document, err := h.documentService.UpdateDocument(id, in)
	if err != nil {
		respondError(c, err, "Error updating document", h.verbose)
		return
	}
	respondOK(c, "Document updated successfully", document)
}

// DeleteDocument removes a document request
// DELETE /api/documents/:id
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document ID")
	if !ok {
		return
	}

	if err := h.documentService.DeleteDocument(id); err != nil {
		respondError(c, err, "Error deleting document", h.verbose)
		return
	}
	respondOK(c, "Document deleted successfully", nil)
}
