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

// ActivityService handles business logic for scheduled activities
type ActivityService struct {
	repo         repository.ActivityRepositoryInterface
	businessRepo repository.BusinessRepositoryInterface
	contactRepo  repository.ContactRepositoryInterface
	ticketRepo   repository.TicketRepositoryInterface
	jobAppRepo   repository.JobApplicationRepositoryInterface
	validator    *validator.Validate
	invalidator  notify.Invalidator
}

// NewActivityService creates a new activity service
func NewActivityService(
	repo repository.ActivityRepositoryInterface,
	businessRepo repository.BusinessRepositoryInterface,
	contactRepo repository.ContactRepositoryInterface,
	ticketRepo repository.TicketRepositoryInterface,
	jobAppRepo repository.JobApplicationRepositoryInterface,
	validator *validator.Validate,
	invalidator notify.Invalidator,
) *ActivityService {
	return &ActivityService{
		repo:         repo,
		businessRepo: businessRepo,
		contactRepo:  contactRepo,
		ticketRepo:   ticketRepo,
		jobAppRepo:   jobAppRepo,
		validator:    validator,
		invalidator:  invalidator,
	}
}

// CreateActivityRequest represents the request to create an activity
type CreateActivityRequest struct {
	Type             string     `json:"type" validate:"required"`
	Date             time.Time  `json:"date" validate:"required"`
	Outcome          string     `json:"outcome,omitempty"`
	BusinessID       *uuid.UUID `json:"business_id,omitempty"`
	ContactID        *uuid.UUID `json:"contact_id,omitempty"`
	TicketID         *uuid.UUID `json:"ticket_id,omitempty"`
	JobApplicationID *uuid.UUID `json:"job_application_id,omitempty"`
}

// CompleteActivityRequest represents the request to complete an activity
type CompleteActivityRequest struct {
	Outcome string `json:"outcome,omitempty"`
}

// ActivityResponse represents the response for activity operations
type ActivityResponse struct {
	ID               uuid.UUID  `json:"id"`
	Type             string     `json:"type"`
	Date             string     `json:"date"`
	Completed        bool       `json:"completed"`
	Outcome          string     `json:"outcome"`
	BusinessID       *uuid.UUID `json:"business_id"`
	ContactID        *uuid.UUID `json:"contact_id"`
	TicketID         *uuid.UUID `json:"ticket_id"`
	JobApplicationID *uuid.UUID `json:"job_application_id"`
	CreatedBy        uuid.UUID  `json:"created_by"`
	CreatedAt        string     `json:"created_at"`
	UpdatedAt        string     `json:"updated_at"`
}

// ActivityListResponse represents a paginated list of activities
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}

// Create creates a new activity. Every anchor named in the request must be
// in-workspace; a contact must belong to the business named alongside it,
// and that mismatch is a validation error, not a workspace error.
func (s *ActivityService) Create(sc scope.Scope, req *CreateActivityRequest) (*ActivityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	activityType := models.ActivityType(req.Type)
	if !activityType.IsValid() {
		return nil, apperrors.ErrInvalidActivityType
	}

	if req.BusinessID == nil && req.TicketID == nil && req.JobApplicationID == nil {
		return nil, apperrors.ErrActivityAnchorMissing
	}

	if req.BusinessID != nil {
		if _, err := s.businessRepo.GetByIDInWorkspace(*req.BusinessID, sc.WorkspaceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrBusinessNotFound
			}
			return nil, fmt.Errorf("failed to get business: %w", err)
		}
	}
	if req.TicketID != nil {
		if _, err := s.ticketRepo.GetByIDInWorkspace(*req.TicketID, sc.WorkspaceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTicketNotFound
			}
			return nil, fmt.Errorf("failed to get ticket: %w", err)
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

	if req.ContactID != nil {
		if req.BusinessID == nil {
			return nil, apperrors.ErrContactBusinessMismatch
		}
		contact, err := s.contactRepo.GetByID(*req.ContactID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrContactNotFound
			}
			return nil, fmt.Errorf("failed to get contact: %w", err)
		}
		if contact.BusinessID != *req.BusinessID {
			return nil, apperrors.ErrContactBusinessMismatch
		}
	}

	activity := &models.Activity{
		Type:             activityType,
		Date:             req.Date,
		Outcome:          req.Outcome,
		BusinessID:       req.BusinessID,
		ContactID:        req.ContactID,
		TicketID:         req.TicketID,
		JobApplicationID: req.JobApplicationID,
		CreatedBy:        sc.UserID,
	}

	if err := s.repo.Create(activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	s.invalidator.Invalidate("/activities")
	return s.toResponse(activity), nil
}

// Complete marks an activity as done. Workspace membership of the activity's
// anchors is re-verified even though the id presumably came from a scoped
// list; client-supplied ids can be stale. Re-completing is an idempotent
// no-op: no error, no second side effect.
func (s *ActivityService) Complete(sc scope.Scope, id uuid.UUID, req *CompleteActivityRequest) (*ActivityResponse, error) {
	activity, err := s.repo.GetByIDInWorkspace(id, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	if !scope.Belongs(activity, sc.WorkspaceID) {
		return nil, apperrors.ErrActivityNotFound
	}

	if activity.Completed {
		return s.toResponse(activity), nil
	}

	activity.Completed = true
	if req != nil && req.Outcome != "" {
		activity.Outcome = req.Outcome
	}

	if err := s.repo.Update(activity); err != nil {
		return nil, fmt.Errorf("failed to complete activity: %w", err)
	}

	s.invalidator.Invalidate("/activities")
	return s.toResponse(activity), nil
}

// Upcoming retrieves incomplete activities dated from now on, date ascending
// with id ascending as the tie-break, capped at limit
func (s *ActivityService) Upcoming(sc scope.Scope, limit int) ([]ActivityResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	activities, err := s.repo.GetUpcoming(sc.WorkspaceID, time.Now(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming activities: %w", err)
	}

	responses := make([]ActivityResponse, len(activities))
	for i := range activities {
		responses[i] = *s.toResponse(&activities[i])
	}
	return responses, nil
}

// ListByBusiness retrieves activities anchored to a business
func (s *ActivityService) ListByBusiness(sc scope.Scope, businessID uuid.UUID, page, pageSize int) (*ActivityListResponse, error) {
	if _, err := s.businessRepo.GetByIDInWorkspace(businessID, sc.WorkspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	page, pageSize = normalizePagination(page, pageSize)
	activities, total, err := s.repo.GetByBusinessID(businessID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	return s.toListResponse(activities, total, page, pageSize), nil
}

// ListByTicket retrieves activities anchored to a ticket
func (s *ActivityService) ListByTicket(sc scope.Scope, ticketID uuid.UUID, page, pageSize int) (*ActivityListResponse, error) {
	if _, err := s.ticketRepo.GetByIDInWorkspace(ticketID, sc.WorkspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	page, pageSize = normalizePagination(page, pageSize)
	activities, total, err := s.repo.GetByTicketID(ticketID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	return s.toListResponse(activities, total, page, pageSize), nil
}

func (s *ActivityService) toResponse(activity *models.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:               activity.ID,
		Type:             string(activity.Type),
		Date:             activity.Date.Format(time.RFC3339),
		Completed:        activity.Completed,
		Outcome:          activity.Outcome,
		BusinessID:       activity.BusinessID,
		ContactID:        activity.ContactID,
		TicketID:         activity.TicketID,
		JobApplicationID: activity.JobApplicationID,
		CreatedBy:        activity.CreatedBy,
		CreatedAt:        activity.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        activity.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *ActivityService) toListResponse(activities []models.Activity, total int64, page, pageSize int) *ActivityListResponse {
	responses := make([]ActivityResponse, len(activities))
	for i := range activities {
		responses[i] = *s.toResponse(&activities[i])
	}
	return &ActivityListResponse{
		Activities: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}
}
