package handler

import (
	"github.com/emunicipality/backend/internal/service"
	"github.com/emunicipality/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DocTypeHandler struct {
	docTypeService *service.DocTypeService
	verbose        bool
}

func NewDocTypeHandler(docTypeService *service.DocTypeService, verbose bool) *DocTypeHandler {
	return &DocTypeHandler{
		docTypeService: docTypeService,
		verbose:        verbose,
	}
}

type CreateDocTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateDocTypeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// GetAllDocTypes returns the document type catalog, ordered by name
// GET /api/doctypes
func (h *DocTypeHandler) GetAllDocTypes(c *gin.Context) {
	docTypes, err := h.docTypeService.ListDocTypes()
	if err != nil {
		respondError(c, err, "Error fetching document types", h.verbose)
		return
	}
	respondList(c, docTypes, len(docTypes))
}

// GetDocTypeByID returns a single document type
// GET /api/doctypes/:id
func (h *DocTypeHandler) GetDocTypeByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document type ID")
	if !ok {
		return
	}

	docType, err := h.docTypeService.GetDocType(id)
	if err != nil {
		respondError(c, err, "Error fetching document type", h.verbose)
		return
	}
	respondOK(c, "", docType)
}

// CreateDocType adds a catalog entry
// POST /api/doctypes
func (h *DocTypeHandler) CreateDocType(c *gin.Context) {
	var req CreateDocTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Document type creation request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		respondValidation(c, "Invalid request body")
		return
	}

	docType, err := h.docTypeService.CreateDocType(req.Name, req.Description)
	if err != nil {
		respondError(c, err, "Error creating document type", h.verbose)
		return
	}
	respondCreated(c, "Document type created successfully", docType)
}

// UpdateDocType applies a merge-patch update to a catalog entry
// PUT /api/doctypes/:id
func (h *DocTypeHandler) UpdateDocType(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document type ID")
	if !ok {
		return
	}

	var req UpdateDocTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Document type update request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		respondValidation(c, "Invalid request body")
		return
	}

	docType, err := h.docTypeService.UpdateDocType(id, service.UpdateDocTypeInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err, "Error updating document type", h.verbose)
		return
	}
	respondOK(c, "Document type updated successfully", docType)
}

// DeleteDocType removes a catalog entry unless documents still reference it
// DELETE /api/doctypes/:id
func (h *DocTypeHandler) DeleteDocType(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document type ID")
	if !ok {
		return
	}

	if err := h.docTypeService.DeleteDocType(id); err != nil {
		respondError(c, err, "Error deleting document type", h.verbose)
		return
	}
	respondOK(c, "Document type deleted successfully", nil)
}
