package controllers

import (
	"errors"
	"net/http"

	"buggyapi/internal/models"
	"buggyapi/internal/service"
	"buggyapi/internal/validation"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	directory service.DirectoryService
}

func NewUserController(directory service.DirectoryService) *UserController {
	return &UserController{
		directory: directory,
	}
}

// respondNameError writes the 422 for a failed name-syntax check
func respondNameError(c *gin.Context, err error) {
	var fieldErr *validation.FieldError
	if !errors.As(err, &fieldErr) {
		fieldErr = &validation.FieldError{Field: "name", Message: err.Error()}
	}
	respondValidation(c, []validation.FieldError{*fieldErr})
}

// ListUsers handles GET /users
func (uc *UserController) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, uc.directory.ListUsers())
}

// GetUser handles GET /users/:id
func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	user, err := uc.directory.GetUser(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /users
func (uc *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	// Name syntax is checked before any mutation; email syntax was checked
	// at binding time.
	name, err := validation.Name(req.Name)
	if err != nil {
		respondNameError(c, err)
		return
	}

	user, err := uc.directory.CreateUser(name, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /users/:id
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	// An empty-string name means "not supplied" and skips both the syntax
	// rule and the crash-name guard. Syntax failures respond before the
	// existence check.
	name := ""
	if req.Name != nil && *req.Name != "" {
		validated, err := validation.Name(*req.Name)
		if err != nil {
			respondNameError(c, err)
			return
		}
		name = validated
	}

	email := ""
	if req.Email != nil {
		email = *req.Email
	}

	user, err := uc.directory.UpdateUser(id, name, email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /users/:id
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	apiKey := c.GetHeader("X-API-Key")
	if err := uc.directory.DeleteUser(id, apiKey); err != nil {
		if errors.Is(err, service.ErrAPIKeyRequired) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// AdminStats handles GET /admin/stats
func (uc *UserController) AdminStats(c *gin.Context) {
	token := c.GetHeader("X-Admin-Token")

	total, err := uc.directory.AdminStats(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_users": total})
}
