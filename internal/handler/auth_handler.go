package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
	"github.com/nurikhwanidris/urusmasjid/internal/service"
	"github.com/nurikhwanidris/urusmasjid/pkg/middleware"
	"github.com/nurikhwanidris/urusmasjid/pkg/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles account creation
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeDuplicateEntry, "Email already registered"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(user))
}

// Login handles credential verification and token issuance
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, response.Unauthorized("Invalid email or password"))
		case errors.Is(err, service.ErrUserInactive):
			c.JSON(http.StatusForbidden, response.Forbidden("Account is inactive"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}

// Me returns the authenticated user's profile
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Not authenticated"))
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(user))
}
