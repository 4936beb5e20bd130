package handler

import (
	"github.com/emunicipality/backend/internal/models"
	"github.com/emunicipality/backend/internal/service"
	"github.com/emunicipality/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
	verbose     bool
}

func NewUserHandler(userService *service.UserService, verbose bool) *UserHandler {
	return &UserHandler{
		userService: userService,
		verbose:     verbose,
	}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// GetAllUsers returns all users, newest first
// GET /api/users
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondError(c, err, "Error fetching users", h.verbose)
		return
	}
	respondList(c, users, len(users))
}

// GetUserByID returns a single user
// GET /api/users/:id
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "user ID")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		respondError(c, err, "Error fetching user", h.verbose)
		return
	}
	respondOK(c, "", user)
}

// CreateUser registers a new user record
// POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("User creation request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		respondValidation(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(service.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		respondError(c, err, "Error creating user", h.verbose)
		return
	}
	respondCreated(c, "User created successfully", user)
}

// UpdateUser applies a merge-patch update to a user
// PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "user ID")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("User update request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		respondValidation(c, "Invalid request body")
		return
	}

	in := service.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		in.Role = &role
	}

	user, err := h.userService.UpdateUser(id, in)
	if err != nil {
		respondError(c, err, "Error updating user", h.verbose)
		return
	}
	respondOK(c, "User updated successfully", user)
}

// DeleteUser removes a user unless documents still reference it
// DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "user ID")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		respondError(c, err, "Error deleting user", h.verbose)
		return
	}
	respondOK(c, "User deleted successfully", nil)
}
