package handler

import (
	"errors"
	"net/http"

	"github.com/emunicipality/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// Response is the fixed JSON envelope every endpoint returns
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondList always includes the count field, even for empty results
func respondList(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Count:   &count,
	})
}

func respondValidation(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: message,
	})
}

// respondError maps the service error taxonomy onto HTTP statuses:
// validation 400, not-found 404, conflict 409, referential block 400,
// anything else 500. Datastore details reach the client only when the
// deployment runs with verbose diagnostics.
func respondError(c *gin.Context, err error, fallback string, verbose bool) {
	var (
		validationErr  *service.ValidationError
		notFoundErr    *service.NotFoundError
		conflictErr    *service.ConflictError
		referentialErr *service.ReferentialBlockError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: err.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, Response{Success: false, Message: err.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, Response{Success: false, Message: err.Error()})
	case errors.As(err, &referentialErr):
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: err.Error()})
	default:
		resp := Response{Success: false, Message: fallback}
		if verbose {
			resp.Error = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}
