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

// ContactService handles business logic for contacts
type ContactService struct {
	repo         repository.ContactRepositoryInterface
	businessRepo repository.BusinessRepositoryInterface
	validator    *validator.Validate
	invalidator  notify.Invalidator
}

// NewContactService creates a new contact service
func NewContactService(repo repository.ContactRepositoryInterface, businessRepo repository.BusinessRepositoryInterface, validator *validator.Validate, invalidator notify.Invalidator) *ContactService {
	return &ContactService{
		repo:         repo,
		businessRepo: businessRepo,
		validator:    validator,
		invalidator:  invalidator,
	}
}

// CreateContactRequest represents the request to create a contact
type CreateContactRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=200"`
	Phone    string `json:"phone,omitempty" validate:"max=40"`
	Position string `json:"position,omitempty" validate:"max=100"`
}

// UpdateContactRequest represents the request to update a contact
type UpdateContactRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=200"`
	Phone    string `json:"phone,omitempty" validate:"max=40"`
	Position string `json:"position,omitempty" validate:"max=100"`
}

// ContactResponse represents the response for contact operations
type ContactResponse struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Position   string    `json:"position"`
	CreatedAt  string    `json:"created_at"`
	UpdatedAt  string    `json:"updated_at"`
}

// Create creates a contact under a business already verified in-workspace
func (s *ContactService) Create(sc scope.Scope, businessID uuid.UUID, req *CreateContactRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	business, err := s.businessRepo.GetByIDInWorkspace(businessID, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	contact := &models.Contact{
		BusinessID: business.ID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
	}

	if err := s.repo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	s.invalidator.Invalidate(fmt.Sprintf("/businesses/%s", business.ID))
	return s.toResponse(contact), nil
}

// ListByBusiness retrieves all contacts of a business in the caller's workspace
func (s *ContactService) ListByBusiness(sc scope.Scope, businessID uuid.UUID) ([]ContactResponse, error) {
	business, err := s.businessRepo.GetByIDInWorkspace(businessID, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	contacts, err := s.repo.GetByBusinessID(business.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	responses := make([]ContactResponse, len(contacts))
	for i := range contacts {
		responses[i] = *s.toResponse(&contacts[i])
	}
	return responses, nil
}

// Update updates a contact confined to the caller's workspace
func (s *ContactService) Update(sc scope.Scope, id uuid.UUID, req *UpdateContactRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact, err := s.repo.GetByIDInWorkspace(id, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	contact.Name = req.Name
	contact.Email = req.Email
	contact.Phone = req.Phone
	contact.Position = req.Position

	if err := s.repo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	s.invalidator.Invalidate(fmt.Sprintf("/businesses/%s", contact.BusinessID))
	return s.toResponse(contact), nil
}

// Delete deletes a contact confined to the caller's workspace
func (s *ContactService) Delete(sc scope.Scope, id uuid.UUID) error {
	contact, err := s.repo.GetByIDInWorkspace(id, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContactNotFound
		}
		return fmt.Errorf("failed to get contact: %w", err)
	}

	if err := s.repo.Delete(contact.ID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	s.invalidator.Invalidate(fmt.Sprintf("/businesses/%s", contact.BusinessID))
	return nil
}

func (s *ContactService) toResponse(contact *models.Contact) *ContactResponse {
	return &ContactResponse{
		ID:         contact.ID,
		BusinessID: contact.BusinessID,
		Name:       contact.Name,
		Email:      contact.Email,
		Phone:      contact.Phone,
		Position:   contact.Position,
		CreatedAt:  contact.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  contact.UpdatedAt.Format(time.RFC3339),
	}
}
