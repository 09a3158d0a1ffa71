package handlers

import (
	"net/http"

	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	service  service.UserServiceInterface
	resolver SessionResolver
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface, resolver SessionResolver) *UserHandler {
	return &UserHandler{service: service, resolver: resolver}
}

// Me handles GET /api/v1/me
// @Summary Get the caller's profile
// @Description Get the authenticated user's profile with workspace details
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} service.UserResponse "Caller's profile"
// @Failure 401 {object} map[string]interface{} "Unauthenticated"
// @Failure 403 {object} map[string]interface{} "No workspace"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	user, err := h.service.Me(sc)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get profile", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
