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

// BusinessHandler handles HTTP requests for businesses
type BusinessHandler struct {
	service  service.BusinessServiceInterface
	resolver SessionResolver
}

// NewBusinessHandler creates a new business handler
func NewBusinessHandler(service service.BusinessServiceInterface, resolver SessionResolver) *BusinessHandler {
	return &BusinessHandler{service: service, resolver: resolver}
}

// CreateBusiness handles POST /api/v1/businesses
// @Summary Create a new business
// @Description Create a new business in the caller's workspace
// @Tags businesses
// @Accept json
// @Produce json
// @Param business body service.CreateBusinessRequest true "Business data"
// @Success 201 {object} service.BusinessResponse "Successfully created business"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Unauthenticated"
// @Failure 403 {object} map[string]interface{} "No workspace"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /businesses [post]
func (h *BusinessHandler) CreateBusiness(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	var req service.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	business, err := h.service.Create(sc, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidStage) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create business", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, business)
}

// GetBusiness handles GET /api/v1/businesses/:id
// @Summary Get business by ID
// @Description Get a specific business by its UUID, confined to the caller's workspace
// @Tags businesses
// @Accept json
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Success 200 {object} service.BusinessResponse "Successfully retrieved business"
// @Failure 400 {object} map[string]interface{} "Invalid business ID"
// @Failure 404 {object} map[string]interface{} "Business not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /businesses/{id} [get]
func (h *BusinessHandler) GetBusiness(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID: invalid UUID format"})
		return
	}

	business, err := h.service.GetByID(sc, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get business", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, business)
}

// ListBusinesses handles GET /api/v1/businesses
// @Summary List businesses
// @Description Get businesses of the caller's workspace with pagination, optionally filtered by pipeline stage
// @Tags businesses
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param stage query string false "Pipeline stage filter"
// @Success 200 {object} service.BusinessListResponse "Successfully retrieved businesses"
// @Failure 400 {object} map[string]interface{} "Invalid stage"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /businesses [get]
func (h *BusinessHandler) ListBusinesses(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	var (
		businesses *service.BusinessListResponse
		err        error
	)
	if stage := c.Query("stage"); stage != "" {
		businesses, err = h.service.ListByStage(sc, stage, page, pageSize)
	} else {
		businesses, err = h.service.List(sc, page, pageSize)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidStage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list businesses", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, businesses)
}

// UpdateBusiness handles PUT /api/v1/businesses/:id
// @Summary Update a business
// @Description Update a business's details, confined to the caller's workspace
// @Tags businesses
// @Accept json
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Param business body service.UpdateBusinessRequest true "Business data"
// @Success 200 {object} service.BusinessResponse "Successfully updated business"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Business not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /businesses/{id} [put]
func (h *BusinessHandler) UpdateBusiness(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID: invalid UUID format"})
		return
	}

	var req service.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	business, err := h.service.Update(sc, id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update business", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, business)
}

// UpdateBusinessStage handles PUT /api/v1/businesses/:id/stage
// @Summary Move a business through the pipeline
// @Description Assign a business to any pipeline stage directly
// @Tags businesses
// @Accept json
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Param stage body service.UpdateStageRequest true "Target stage"
// @Success 200 {object} service.BusinessResponse "Successfully updated stage"
// @Failure 400 {object} map[string]interface{} "Invalid stage"
// @Failure 404 {object} map[string]interface{} "Business not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /businesses/{id}/stage [put]
func (h *BusinessHandler) UpdateBusinessStage(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID: invalid UUID format"})
		return
	}

	var req service.UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	business, err := h.service.UpdateStage(sc, id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidStage) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update business stage", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, business)
}

// DeleteBusiness handles DELETE /api/v1/businesses/:id
// @Summary Delete a business
// @Description Delete a business, confined to the caller's workspace
// @Tags businesses
// @Accept json
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Success 204 "Successfully deleted business"
// @Failure 400 {object} map[string]interface{} "Invalid business ID"
// @Failure 404 {object} map[string]interface{} "Business not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /businesses/{id} [delete]
func (h *BusinessHandler) DeleteBusiness(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(sc, id); err != nil {
		if errors.Is(err, apperrors.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete business", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetStageCatalog handles GET /api/v1/businesses/stages
// @Summary List pipeline stages
// @Description Get every pipeline stage with its display label, variant and description
// @Tags businesses
// @Accept json
// @Produce json
// @Success 200 {array} service.StageCatalogEntry "Pipeline stages in order"
// @Security BearerAuth
// @Router /businesses/stages [get]
func (h *BusinessHandler) GetStageCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.StageCatalog())
}
