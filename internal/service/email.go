package service

import (
	"errors"
	"fmt"
	"time"

	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/logger"
	"crm-portal-backend/internal/notify"
	"crm-portal-backend/internal/repository"
	"crm-portal-backend/internal/scope"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailService handles ingestion and association of inbound emails
type EmailService struct {
	repo         repository.InboundEmailRepositoryInterface
	contactRepo  repository.ContactRepositoryInterface
	businessRepo repository.BusinessRepositoryInterface
	validator    *validator.Validate
	invalidator  notify.Invalidator
	log          *logger.Logger
}

// NewEmailService creates a new email service
func NewEmailService(
	repo repository.InboundEmailRepositoryInterface,
	contactRepo repository.ContactRepositoryInterface,
	businessRepo repository.BusinessRepositoryInterface,
	validator *validator.Validate,
	invalidator notify.Invalidator,
) *EmailService {
	return &EmailService{
		repo:         repo,
		contactRepo:  contactRepo,
		businessRepo: businessRepo,
		validator:    validator,
		invalidator:  invalidator,
		log:          logger.New().WithField("component", "email_service"),
	}
}

// IngestEmailRequest represents an inbound message to record
type IngestEmailRequest struct {
	FromEmail  string     `json:"from_email" validate:"required,email,max=200"`
	ToEmails   []string   `json:"to_emails,omitempty" validate:"dive,email"`
	CcEmails   []string   `json:"cc_emails,omitempty" validate:"dive,email"`
	Subject    string     `json:"subject,omitempty" validate:"max=500"`
	Body       string     `json:"body,omitempty"`
	ReceivedAt *time.Time `json:"received_at,omitempty"`
}

// ManualAssociateRequest represents a manual override of an email's association
type ManualAssociateRequest struct {
	BusinessID *uuid.UUID `json:"business_id,omitempty"`
	ContactID  *uuid.UUID `json:"contact_id,omitempty"`
}

// AssociationResult carries the outcome of one resolver run. Both ids nil
// means the email stays unassociated; that is a normal outcome, not an error.
type AssociationResult struct {
	BusinessID *uuid.UUID `json:"business_id"`
	ContactID  *uuid.UUID `json:"contact_id"`
}

// EmailResponse represents the response for email operations
type EmailResponse struct {
	ID         uuid.UUID  `json:"id"`
	FromEmail  string     `json:"from_email"`
	ToEmails   []string   `json:"to_emails"`
	CcEmails   []string   `json:"cc_emails"`
	Subject    string     `json:"subject"`
	Body       string     `json:"body"`
	ReceivedAt string     `json:"received_at"`
	BusinessID *uuid.UUID `json:"business_id"`
	ContactID  *uuid.UUID `json:"contact_id"`
	CreatedAt  string     `json:"created_at"`
	UpdatedAt  string     `json:"updated_at"`
}

// EmailListResponse represents a paginated list of emails
type EmailListResponse struct {
	Emails   []EmailResponse `json:"emails"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Ingest records an inbound email and immediately runs the association
// resolver on it. A resolver failure after the row is stored is logged and
// swallowed; the email survives as unassociated.
func (s *EmailService) Ingest(sc scope.Scope, req *IngestEmailRequest) (*EmailResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	receivedAt := time.Now()
	if req.ReceivedAt != nil {
		receivedAt = *req.ReceivedAt
	}

	email := &models.InboundEmail{
		WorkspaceID: sc.WorkspaceID,
		FromEmail:   req.FromEmail,
		ToEmails:    req.ToEmails,
		CcEmails:    req.CcEmails,
		Subject:     req.Subject,
		Body:        req.Body,
		ReceivedAt:  receivedAt,
	}

	if err := s.repo.Create(email); err != nil {
		return nil, fmt.Errorf("failed to create email: %w", err)
	}

	if _, err := s.Associate(email.ID); err != nil {
		s.log.WithScope(sc).WithField("email_id", email.ID).WithError(err).Warn("association failed, email left unassociated")
	} else if refreshed, err := s.repo.GetByID(email.ID); err == nil {
		email = refreshed
	}

	s.invalidator.Invalidate("/emails")
	return s.toResponse(email), nil
}

// Associate runs the layered resolver against one stored email.
//
// Layer order is fixed: a contact whose address appears among the email's
// candidate addresses wins over a business matched the same way, and the
// earliest-created row wins within a layer. Candidate domains are computed
// and logged but never consulted; an email whose addresses match nothing
// falls through to no-match regardless of domain overlap.
func (s *EmailService) Associate(emailID uuid.UUID) (*AssociationResult, error) {
	email, err := s.repo.GetByID(emailID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmailNotFound
		}
		return nil, fmt.Errorf("failed to get email: %w", err)
	}

	addresses := email.CandidateAddresses()
	result := &AssociationResult{}

	contact, err := s.contactRepo.GetFirstByEmails(addresses)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to match contact: %w", err)
	}
	if contact != nil {
		result.ContactID = &contact.ID
		result.BusinessID = &contact.BusinessID
	} else {
		business, err := s.businessRepo.GetFirstByEmails(addresses)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to match business: %w", err)
		}
		if business != nil {
			result.BusinessID = &business.ID
		}
	}

	// No match writes nothing: the stored association, manual overrides
	// included, must survive a resolver re-run that comes up empty.
	if result.BusinessID == nil {
		s.log.WithFields(map[string]interface{}{
			"email_id": email.ID,
			"domains":  email.CandidateDomains(),
		}).Debug("no address match, candidate domains not used for matching")
		return result, nil
	}

	email.BusinessID = result.BusinessID
	email.ContactID = result.ContactID
	if err := s.repo.Update(email); err != nil {
		return nil, fmt.Errorf("failed to store association: %w", err)
	}

	return result, nil
}

// ManualAssociate overrides the resolver's outcome for one email. A nil
// business clears the association; a contact must belong to the business
// set alongside it.
func (s *EmailService) ManualAssociate(sc scope.Scope, emailID uuid.UUID, req *ManualAssociateRequest) (*EmailResponse, error) {
	email, err := s.repo.GetByIDInWorkspace(emailID, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmailNotFound
		}
		return nil, fmt.Errorf("failed to get email: %w", err)
	}

	if req.BusinessID != nil {
		if _, err := s.businessRepo.GetByIDInWorkspace(*req.BusinessID, sc.WorkspaceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrBusinessNotFound
			}
			return nil, fmt.Errorf("failed to get business: %w", err)
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

	email.BusinessID = req.BusinessID
	email.ContactID = req.ContactID

	if err := s.repo.Update(email); err != nil {
		return nil, fmt.Errorf("failed to update email: %w", err)
	}

	s.invalidator.Invalidate(fmt.Sprintf("/emails/%s", email.ID))
	return s.toResponse(email), nil
}

// GetByID retrieves an email confined to the caller's workspace
func (s *EmailService) GetByID(sc scope.Scope, id uuid.UUID) (*EmailResponse, error) {
	email, err := s.repo.GetByIDInWorkspace(id, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmailNotFound
		}
		return nil, fmt.Errorf("failed to get email: %w", err)
	}

	return s.toResponse(email), nil
}

// List retrieves emails of the caller's workspace with pagination
func (s *EmailService) List(sc scope.Scope, page, pageSize int) (*EmailListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	emails, total, err := s.repo.GetByWorkspaceID(sc.WorkspaceID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list emails: %w", err)
	}

	return s.toListResponse(emails, total, page, pageSize), nil
}

// ListUnassociated retrieves emails the resolver could not place
func (s *EmailService) ListUnassociated(sc scope.Scope, page, pageSize int) (*EmailListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	emails, total, err := s.repo.GetUnassociated(sc.WorkspaceID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list unassociated emails: %w", err)
	}

	return s.toListResponse(emails, total, page, pageSize), nil
}

func (s *EmailService) toResponse(email *models.InboundEmail) *EmailResponse {
	return &EmailResponse{
		ID:         email.ID,
		FromEmail:  email.FromEmail,
		ToEmails:   email.ToEmails,
		CcEmails:   email.CcEmails,
		Subject:    email.Subject,
		Body:       email.Body,
		ReceivedAt: email.ReceivedAt.Format(time.RFC3339),
		BusinessID: email.BusinessID,
		ContactID:  email.ContactID,
		CreatedAt:  email.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  email.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *EmailService) toListResponse(emails []models.InboundEmail, total int64, page, pageSize int) *EmailListResponse {
	responses := make([]EmailResponse, len(emails))
	for i := range emails {
		responses[i] = *s.toResponse(&emails[i])
	}
	return &EmailListResponse{
		Emails:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
