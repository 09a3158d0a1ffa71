package service

import (
	"errors"
	"fmt"
	"time"

	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/notify"
	"crm-portal-backend/internal/repository"
	"crm-portal-backend/internal/scope"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketService handles business logic for support tickets. The status
// machine is permissive: any status may be assigned from any other; the only
// mandatory side effect is resolution timestamping. Mutations re-read the row
// before saving, so concurrent writers are last-writer-wins (known
// limitation, not detected).
type TicketService struct {
	repo         repository.TicketRepositoryInterface
	businessRepo repository.BusinessRepositoryInterface
	jobAppRepo   repository.JobApplicationRepositoryInterface
	userRepo     repository.UserRepositoryInterface
	validator    *validator.Validate
	invalidator  notify.Invalidator
}

// NewTicketService creates a new ticket service
func NewTicketService(
	repo repository.TicketRepositoryInterface,
	businessRepo repository.BusinessRepositoryInterface,
	jobAppRepo repository.JobApplicationRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	validator *validator.Validate,
	invalidator notify.Invalidator,
) *TicketService {
	return &TicketService{
		repo:         repo,
		businessRepo: businessRepo,
		jobAppRepo:   jobAppRepo,
		userRepo:     userRepo,
		validator:    validator,
		invalidator:  invalidator,
	}
}

// CreateTicketRequest represents the request to create a ticket
type CreateTicketRequest struct {
	Subject          string     `json:"subject" validate:"required,min=1,max=200"`
	Description      string     `json:"description,omitempty"`
	Priority         string     `json:"priority,omitempty"`
	BusinessID       *uuid.UUID `json:"business_id,omitempty"`
	JobApplicationID *uuid.UUID `json:"job_application_id,omitempty"`
}

// UpdateTicketRequest represents the request to update ticket fields outside
// the status machine
type UpdateTicketRequest struct {
	Subject     string `json:"subject" validate:"required,min=1,max=200"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// UpdateTicketStatusRequest represents a status transition request
type UpdateTicketStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AssignTicketRequest represents an assignment change. A nil assignee clears
// the assignment.
type AssignTicketRequest struct {
	AssigneeID *uuid.UUID `json:"assignee_id"`
}

// AddCommentRequest represents the request to add a ticket comment
type AddCommentRequest struct {
	Body string `json:"body" validate:"required,min=1"`
}

// TicketResponse represents the response for ticket operations
type TicketResponse struct {
	ID               uuid.UUID  `json:"id"`
	Subject          string     `json:"subject"`
	Description      string     `json:"description"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	AssigneeID       *uuid.UUID `json:"assignee_id"`
	BusinessID       *uuid.UUID `json:"business_id"`
	JobApplicationID *uuid.UUID `json:"job_application_id"`
	ResolvedAt       *string    `json:"resolved_at"`
	CreatedAt        string     `json:"created_at"`
	UpdatedAt        string     `json:"updated_at"`
}

// TicketListResponse represents a paginated list of tickets
type TicketListResponse struct {
	Tickets  []TicketResponse `json:"tickets"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// TicketCommentResponse represents the response for ticket comment operations
type TicketCommentResponse struct {
	ID        uuid.UUID `json:"id"`
	TicketID  uuid.UUID `json:"ticket_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt string    `json:"created_at"`
}

// Create creates a new ticket in the caller's workspace. Anchors named in the
// request must already be in-workspace; the direct workspace column is always
// stamped as well, so later guard checks avoid a join.
func (s *TicketService) Create(sc scope.Scope, req *CreateTicketRequest) (*TicketResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	priority := models.TicketPriorityMedium
	if req.Priority != "" {
		priority = models.TicketPriority(req.Priority)
		if !priority.IsValid() {
			return nil, apperrors.ErrInvalidPriority
		}
	}

	if req.BusinessID != nil {
		if _, err := s.businessRepo.GetByIDInWorkspace(*req.BusinessID, sc.WorkspaceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrBusinessNotFound
			}
			return nil, fmt.Errorf("failed to get business: %w", err)
		}
	}
	if req.JobApplicationID != nil {
		if _, err := s.jobAppRepo.GetByIDInWorkspace(*req.JobApplicationID, sc.WorkspaceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrJobApplicationNotFound
			}
			return nil, fmt.Errorf("failed to get job application: %w", err)
		}
	}

	workspaceID := sc.WorkspaceID
	ticket := &models.Ticket{
		WorkspaceID:      &workspaceID,
		BusinessID:       req.BusinessID,
		JobApplicationID: req.JobApplicationID,
		Subject:          req.Subject,
		Description:      req.Description,
		Status:           models.TicketStatusUnassigned,
		Priority:         priority,
	}

	if err := s.repo.Create(ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	s.invalidator.Invalidate("/tickets")
	return s.toResponse(ticket), nil
}

// GetByID retrieves a ticket confined to the caller's workspace. Out-of-tenant
// ids report ticket not found, never a permission error.
func (s *TicketService) GetByID(sc scope.Scope, id uuid.UUID) (*TicketResponse, error) {
	ticket, err := s.repo.GetByIDInWorkspace(id, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return s.toResponse(ticket), nil
}

// List retrieves tickets of the caller's workspace with pagination
func (s *TicketService) List(sc scope.Scope, page, pageSize int) (*TicketListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	tickets, total, err := s.repo.GetByWorkspaceID(sc.WorkspaceID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	responses := make([]TicketResponse, len(tickets))
	for i := range tickets {
		responses[i] = *s.toResponse(&tickets[i])
	}

	return &TicketListResponse{
		Tickets:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates ticket fields outside the status machine
func (s *TicketService) Update(sc scope.Scope, id uuid.UUID, req *UpdateTicketRequest) (*TicketResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ticket, err := s.repo.GetByIDInWorkspace(id, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	ticket.Subject = req.Subject
	ticket.Description = req.Description
	if req.Priority != "" {
		priority := models.TicketPriority(req.Priority)
		if !priority.IsValid() {
			return nil, apperrors.ErrInvalidPriority
		}
		ticket.Priority = priority
	}

	if err := s.repo.Update(ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	s.invalidator.Invalidate(fmt.Sprintf("/tickets/%s", ticket.ID))
	return s.toResponse(ticket), nil
}

// UpdateStatus applies a status transition. Entering resolved/closed from an
// active status stamps resolved_at; leaving them clears it; re-entering a
// resolved status leaves the stamp untouched.
func (s *TicketService) UpdateStatus(sc scope.Scope, id uuid.UUID, req *UpdateTicketStatusRequest) (*TicketResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.TicketStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	ticket, err := s.repo.GetByIDInWorkspace(id, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	ticket.ApplyStatus(status, time.Now())

	if err := s.repo.Update(ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket status: %w", err)
	}

	s.invalidator.Invalidate(fmt.Sprintf("/tickets/%s", ticket.ID))
	return s.toResponse(ticket), nil
}

// Assign changes the ticket's assignee. Status-independent, but guarded by
// the same workspace check as a status transition; the assignee must be a
// member of the same workspace.
func (s *TicketService) Assign(sc scope.Scope, id uuid.UUID, req *AssignTicketRequest) (*TicketResponse, error) {
	ticket, err := s.repo.GetByIDInWorkspace(id, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	if req.AssigneeID != nil {
		assignee, err := s.userRepo.GetByID(*req.AssigneeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to get assignee: %w", err)
		}
		if assignee.WorkspaceID == nil || *assignee.WorkspaceID != sc.WorkspaceID {
			return nil, apperrors.ErrUserNotFound
		}
	}

	ticket.AssigneeID = req.AssigneeID

	if err := s.repo.Update(ticket); err != nil {
		return nil, fmt.Errorf("failed to assign ticket: %w", err)
	}

	s.invalidator.Invalidate(fmt.Sprintf("/tickets/%s", ticket.ID))
	return s.toResponse(ticket), nil
}

// Delete deletes a ticket after confirming workspace membership. Dependent
// comments are removed first by the repository.
func (s *TicketService) Delete(sc scope.Scope, id uuid.UUID) error {
	ticket, err := s.repo.GetByIDInWorkspace(id, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTicketNotFound
		}
		return fmt.Errorf("failed to get ticket: %w", err)
	}

	if err := s.repo.Delete(ticket.ID); err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	s.invalidator.Invalidate("/tickets")
	return nil
}

// AddComment adds a comment to a ticket, attributed to the caller
func (s *TicketService) AddComment(sc scope.Scope, ticketID uuid.UUID, req *AddCommentRequest) (*TicketCommentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ticket, err := s.repo.GetByIDInWorkspace(ticketID, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	comment := &models.TicketComment{
		TicketID: ticket.ID,
		AuthorID: sc.UserID,
		Body:     req.Body,
	}

	if err := s.repo.CreateComment(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.invalidator.Invalidate(fmt.Sprintf("/tickets/%s", ticket.ID))
	return s.toCommentResponse(comment), nil
}

// ListComments retrieves all comments of a ticket in the caller's workspace
func (s *TicketService) ListComments(sc scope.Scope, ticketID uuid.UUID) ([]TicketCommentResponse, error) {
	ticket, err := s.repo.GetByIDInWorkspace(ticketID, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	comments, err := s.repo.GetCommentsByTicketID(ticket.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	responses := make([]TicketCommentResponse, len(comments))
	for i := range comments {
		responses[i] = *s.toCommentResponse(&comments[i])
	}
	return responses, nil
}

func (s *TicketService) toResponse(ticket *models.Ticket) *TicketResponse {
	var resolvedAt *string
	if ticket.ResolvedAt != nil {
		formatted := ticket.ResolvedAt.Format(time.RFC3339)
		resolvedAt = &formatted
	}
	return &TicketResponse{
		ID:               ticket.ID,
		Subject:          ticket.Subject,
		Description:      ticket.Description,
		Status:           string(ticket.Status),
		Priority:         string(ticket.Priority),
		AssigneeID:       ticket.AssigneeID,
		BusinessID:       ticket.BusinessID,
		JobApplicationID: ticket.JobApplicationID,
		ResolvedAt:       resolvedAt,
		CreatedAt:        ticket.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        ticket.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *TicketService) toCommentResponse(comment *models.TicketComment) *TicketCommentResponse {
	return &TicketCommentResponse{
		ID:        comment.ID,
		TicketID:  comment.TicketID,
		AuthorID:  comment.AuthorID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}
}
