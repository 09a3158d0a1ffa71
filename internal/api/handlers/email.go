package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmailHandler handles HTTP requests for inbound emails
type EmailHandler struct {
	service  service.EmailServiceInterface
	resolver SessionResolver
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(service service.EmailServiceInterface, resolver SessionResolver) *EmailHandler {
	return &EmailHandler{service: service, resolver: resolver}
}

// IngestEmail handles POST /api/v1/emails
// @Summary Ingest an inbound email
// @Description Record an inbound email and run the association resolver on it
// @Tags emails
// @Accept json
// @Produce json
// @Param email body service.IngestEmailRequest true "Email data"
// @Success 201 {object} service.EmailResponse "Successfully ingested email"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /emails [post]
func (h *EmailHandler) IngestEmail(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	var req service.IngestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	email, err := h.service.Ingest(sc, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to ingest email", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, email)
}

// GetEmail handles GET /api/v1/emails/:id
// @Summary Get email by ID
// @Description Get a specific inbound email, confined to the caller's workspace
// @Tags emails
// @Accept json
// @Produce json
// @Param id path string true "Email ID (UUID)"
// @Success 200 {object} service.EmailResponse "Successfully retrieved email"
// @Failure 400 {object} map[string]interface{} "Invalid email ID"
// @Failure 404 {object} map[string]interface{} "Email not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /emails/{id} [get]
func (h *EmailHandler) GetEmail(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email ID: invalid UUID format"})
		return
	}

	email, err := h.service.GetByID(sc, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get email", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, email)
}

// ListEmails handles GET /api/v1/emails
// @Summary List emails
// @Description Get inbound emails of the caller's workspace, optionally only unassociated ones
// @Tags emails
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param unassociated query bool false "Only emails the resolver could not place"
// @Success 200 {object} service.EmailListResponse "Successfully retrieved emails"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /emails [get]
func (h *EmailHandler) ListEmails(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	var (
		emails *service.EmailListResponse
		err    error
	)
	if c.Query("unassociated") == "true" {
		emails, err = h.service.ListUnassociated(sc, page, pageSize)
	} else {
		emails, err = h.service.List(sc, page, pageSize)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list emails", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, emails)
}

// AssociateEmail handles POST /api/v1/emails/:id/associate
// @Summary Re-run association for an email
// @Description Run the association resolver against a stored email and return the outcome
// @Tags emails
// @Accept json
// @Produce json
// @Param id path string true "Email ID (UUID)"
// @Success 200 {object} service.AssociationResult "Association outcome; both ids null means no match"
// @Failure 400 {object} map[string]interface{} "Invalid email ID"
// @Failure 404 {object} map[string]interface{} "Email not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /emails/{id}/associate [post]
func (h *EmailHandler) AssociateEmail(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email ID: invalid UUID format"})
		return
	}

	// confine the visible email set to the caller's workspace before the
	// resolver runs its unscoped address matching
	if _, err := h.service.GetByID(sc, id); err != nil {
		if errors.Is(err, apperrors.ErrEmailNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get email", "details": err.Error()})
		return
	}

	result, err := h.service.Associate(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to associate email", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ManualAssociateEmail handles PUT /api/v1/emails/:id/association
// @Summary Manually associate an email
// @Description Override the resolver's outcome for an email; a null business clears the association
// @Tags emails
// @Accept json
// @Produce json
// @Param id path string true "Email ID (UUID)"
// @Param association body service.ManualAssociateRequest true "Association override"
// @Success 200 {object} service.EmailResponse "Successfully updated association"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Email, business or contact not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /emails/{id}/association [put]
func (h *EmailHandler) ManualAssociateEmail(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email ID: invalid UUID format"})
		return
	}

	var req service.ManualAssociateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	email, err := h.service.ManualAssociate(sc, id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update association", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, email)
}
