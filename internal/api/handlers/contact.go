package handlers

import (
	"errors"
	"net/http"

	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContactHandler handles HTTP requests for contacts
type ContactHandler struct {
	service  service.ContactServiceInterface
	resolver SessionResolver
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service service.ContactServiceInterface, resolver SessionResolver) *ContactHandler {
	return &ContactHandler{service: service, resolver: resolver}
}

// CreateContact handles POST /api/v1/businesses/:id/contacts
// @Summary Create a contact
// @Description Create a contact under a business in the caller's workspace
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Param contact body service.CreateContactRequest true "Contact data"
// @Success 201 {object} service.ContactResponse "Successfully created contact"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Business not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /businesses/{id}/contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID: invalid UUID format"})
		return
	}

	var req service.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	contact, err := h.service.Create(sc, businessID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// ListContacts handles GET /api/v1/businesses/:id/contacts
// @Summary List contacts of a business
// @Description Get all contacts of a business in the caller's workspace
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Success 200 {array} service.ContactResponse "Successfully retrieved contacts"
// @Failure 404 {object} map[string]interface{} "Business not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /businesses/{id}/contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID: invalid UUID format"})
		return
	}

	contacts, err := h.service.ListByBusiness(sc, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list contacts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// UpdateContact handles PUT /api/v1/contacts/:id
// @Summary Update a contact
// @Description Update a contact's details, confined to the caller's workspace
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Param contact body service.UpdateContactRequest true "Contact data"
// @Success 200 {object} service.ContactResponse "Successfully updated contact"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID: invalid UUID format"})
		return
	}

	var req service.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	contact, err := h.service.Update(sc, id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// DeleteContact handles DELETE /api/v1/contacts/:id
// @Summary Delete a contact
// @Description Delete a contact, confined to the caller's workspace
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 204 "Successfully deleted contact"
// @Failure 400 {object} map[string]interface{} "Invalid contact ID"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(sc, id); err != nil {
		if errors.Is(err, apperrors.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
