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

// TicketHandler handles HTTP requests for tickets
type TicketHandler struct {
	service  service.TicketServiceInterface
	resolver SessionResolver
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(service service.TicketServiceInterface, resolver SessionResolver) *TicketHandler {
	return &TicketHandler{service: service, resolver: resolver}
}

// CreateTicket handles POST /api/v1/tickets
// @Summary Create a new ticket
// @Description Create a ticket in the caller's workspace, optionally anchored to a business or job application
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket body service.CreateTicketRequest true "Ticket data"
// @Success 201 {object} service.TicketResponse "Successfully created ticket"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Anchor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	var req service.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ticket, err := h.service.Create(sc, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidPriority) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ticket", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// GetTicket handles GET /api/v1/tickets/:id
// @Summary Get ticket by ID
// @Description Get a specific ticket by its UUID, confined to the caller's workspace
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Success 200 {object} service.TicketResponse "Successfully retrieved ticket"
// @Failure 400 {object} map[string]interface{} "Invalid ticket ID"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket ID: invalid UUID format"})
		return
	}

	ticket, err := h.service.GetByID(sc, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get ticket", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// ListTickets handles GET /api/v1/tickets
// @Summary List tickets
// @Description Get tickets of the caller's workspace with pagination
// @Tags tickets
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TicketListResponse "Successfully retrieved tickets"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	tickets, err := h.service.List(sc, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tickets", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tickets)
}

// UpdateTicket handles PUT /api/v1/tickets/:id
// @Summary Update a ticket
// @Description Update ticket fields outside the status machine
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param ticket body service.UpdateTicketRequest true "Ticket data"
// @Success 200 {object} service.TicketResponse "Successfully updated ticket"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket ID: invalid UUID format"})
		return
	}

	var req service.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ticket, err := h.service.Update(sc, id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidPriority) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ticket", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// UpdateTicketStatus handles PUT /api/v1/tickets/:id/status
// @Summary Change ticket status
// @Description Apply a status transition; entering resolved or closed stamps the resolution time
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param status body service.UpdateTicketStatusRequest true "Target status"
// @Success 200 {object} service.TicketResponse "Successfully updated status"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tickets/{id}/status [put]
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket ID: invalid UUID format"})
		return
	}

	var req service.UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ticket, err := h.service.UpdateStatus(sc, id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidStatus) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ticket status", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// AssignTicket handles PUT /api/v1/tickets/:id/assignee
// @Summary Assign a ticket
// @Description Assign a ticket to a workspace member, or clear the assignment
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param assignment body service.AssignTicketRequest true "Assignee"
// @Success 200 {object} service.TicketResponse "Successfully assigned ticket"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Ticket or assignee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tickets/{id}/assignee [put]
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket ID: invalid UUID format"})
		return
	}

	var req service.AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ticket, err := h.service.Assign(sc, id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign ticket", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// DeleteTicket handles DELETE /api/v1/tickets/:id
// @Summary Delete a ticket
// @Description Delete a ticket and its comments, confined to the caller's workspace
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Success 204 "Successfully deleted ticket"
// @Failure 400 {object} map[string]interface{} "Invalid ticket ID"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(sc, id); err != nil {
		if errors.Is(err, apperrors.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ticket", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// AddTicketComment handles POST /api/v1/tickets/:id/comments
// @Summary Add a ticket comment
// @Description Add a comment to a ticket, attributed to the caller
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param comment body service.AddCommentRequest true "Comment body"
// @Success 201 {object} service.TicketCommentResponse "Successfully created comment"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tickets/{id}/comments [post]
func (h *TicketHandler) AddTicketComment(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket ID: invalid UUID format"})
		return
	}

	var req service.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	comment, err := h.service.AddComment(sc, id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListTicketComments handles GET /api/v1/tickets/:id/comments
// @Summary List ticket comments
// @Description Get all comments of a ticket in the caller's workspace
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Success 200 {array} service.TicketCommentResponse "Successfully retrieved comments"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tickets/{id}/comments [get]
func (h *TicketHandler) ListTicketComments(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket ID: invalid UUID format"})
		return
	}

	comments, err := h.service.ListComments(sc, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list comments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comments)
}
