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

// ActivityHandler handles HTTP requests for activities
type ActivityHandler struct {
	service  service.ActivityServiceInterface
	resolver SessionResolver
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(service service.ActivityServiceInterface, resolver SessionResolver) *ActivityHandler {
	return &ActivityHandler{service: service, resolver: resolver}
}

// CreateActivity handles POST /api/v1/activities
// @Summary Create a new activity
// @Description Create an activity anchored to a business, ticket or job application in the caller's workspace
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body service.CreateActivityRequest true "Activity data"
// @Success 201 {object} service.ActivityResponse "Successfully created activity"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Anchor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /activities [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	var req service.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	activity, err := h.service.Create(sc, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) ||
			errors.Is(err, apperrors.ErrInvalidActivityType) ||
			errors.Is(err, apperrors.ErrActivityAnchorMissing) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// CompleteActivity handles POST /api/v1/activities/:id/complete
// @Summary Complete an activity
// @Description Mark an activity as done; completing an already completed activity is a no-op
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Param completion body service.CompleteActivityRequest false "Optional outcome"
// @Success 200 {object} service.ActivityResponse "Activity is completed"
// @Failure 400 {object} map[string]interface{} "Invalid activity ID"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /activities/{id}/complete [post]
func (h *ActivityHandler) CompleteActivity(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID: invalid UUID format"})
		return
	}

	var req service.CompleteActivityRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	activity, err := h.service.Complete(sc, id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete activity", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, activity)
}

// UpcomingActivities handles GET /api/v1/activities/upcoming
// @Summary List upcoming activities
// @Description Get incomplete activities dated from now on, soonest first
// @Tags activities
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of items" default(20)
// @Success 200 {array} service.ActivityResponse "Upcoming activities"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /activities/upcoming [get]
func (h *ActivityHandler) UpcomingActivities(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	activities, err := h.service.Upcoming(sc, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list upcoming activities", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, activities)
}

// ListActivitiesByBusiness handles GET /api/v1/businesses/:id/activities
// @Summary List activities of a business
// @Description Get activities anchored to a business with pagination
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ActivityListResponse "Successfully retrieved activities"
// @Failure 404 {object} map[string]interface{} "Business not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /businesses/{id}/activities [get]
func (h *ActivityHandler) ListActivitiesByBusiness(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID: invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	activities, err := h.service.ListByBusiness(sc, businessID, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activities", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, activities)
}

// ListActivitiesByTicket handles GET /api/v1/tickets/:id/activities
// @Summary List activities of a ticket
// @Description Get activities anchored to a ticket with pagination
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ActivityListResponse "Successfully retrieved activities"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tickets/{id}/activities [get]
func (h *ActivityHandler) ListActivitiesByTicket(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket ID: invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	activities, err := h.service.ListByTicket(sc, ticketID, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activities", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, activities)
}
