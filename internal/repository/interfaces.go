package repository

import (
	"time"

	"crm-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// WorkspaceRepositoryInterface defines the interface for workspace repository operations
type WorkspaceRepositoryInterface interface {
	Create(workspace *models.Workspace) error
	GetByID(id uuid.UUID) (*models.Workspace, error)
	GetByName(name string) (*models.Workspace, error)
	Update(workspace *models.Workspace) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByWorkspaceID(workspaceID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// BusinessRepositoryInterface defines the interface for business repository operations.
// The *InWorkspace variants embed the workspace guard: an id that exists in a
// different workspace behaves exactly like a missing row.
type BusinessRepositoryInterface interface {
	Create(business *models.Business) error
	GetByIDInWorkspace(id, workspaceID uuid.UUID) (*models.Business, error)
	GetByWorkspaceID(workspaceID uuid.UUID, limit, offset int) ([]models.Business, int64, error)
	GetByStageInWorkspace(workspaceID uuid.UUID, stage models.BusinessStage, limit, offset int) ([]models.Business, int64, error)
	GetFirstByEmails(emails []string) (*models.Business, error)
	Update(business *models.Business) error
	Delete(id uuid.UUID) error
}

// ContactRepositoryInterface defines the interface for contact repository operations
type ContactRepositoryInterface interface {
	Create(contact *models.Contact) error
	GetByID(id uuid.UUID) (*models.Contact, error)
	GetByIDInWorkspace(id, workspaceID uuid.UUID) (*models.Contact, error)
	GetByBusinessID(businessID uuid.UUID) ([]models.Contact, error)
	GetFirstByEmails(emails []string) (*models.Contact, error)
	Update(contact *models.Contact) error
	Delete(id uuid.UUID) error
}

// JobApplicationRepositoryInterface defines the interface for job application repository operations
type JobApplicationRepositoryInterface interface {
	Create(application *models.JobApplication) error
	GetByIDInWorkspace(id, workspaceID uuid.UUID) (*models.JobApplication, error)
	GetByWorkspaceID(workspaceID uuid.UUID, limit, offset int) ([]models.JobApplication, int64, error)
	Update(application *models.JobApplication) error
	Delete(id uuid.UUID) error
}

// TicketRepositoryInterface defines the interface for ticket repository operations
type TicketRepositoryInterface interface {
	Create(ticket *models.Ticket) error
	GetByIDInWorkspace(id, workspaceID uuid.UUID) (*models.Ticket, error)
	GetByWorkspaceID(workspaceID uuid.UUID, limit, offset int) ([]models.Ticket, int64, error)
	GetOpenAssignedTo(workspaceID, assigneeID uuid.UUID) ([]models.Ticket, error)
	CountOpenAssignedTo(workspaceID, assigneeID uuid.UUID) (int64, error)
	Update(ticket *models.Ticket) error
	Delete(id uuid.UUID) error
	CreateComment(comment *models.TicketComment) error
	GetCommentsByTicketID(ticketID uuid.UUID) ([]models.TicketComment, error)
}

// ActivityRepositoryInterface defines the interface for activity repository operations
type ActivityRepositoryInterface interface {
	Create(activity *models.Activity) error
	GetByIDInWorkspace(id, workspaceID uuid.UUID) (*models.Activity, error)
	GetByBusinessID(businessID uuid.UUID, limit, offset int) ([]models.Activity, int64, error)
	GetByTicketID(ticketID uuid.UUID, limit, offset int) ([]models.Activity, int64, error)
	GetUpcoming(workspaceID uuid.UUID, after time.Time, limit int) ([]models.Activity, error)
	CountUpcoming(workspaceID uuid.UUID, after time.Time) (int64, error)
	Update(activity *models.Activity) error
	Delete(id uuid.UUID) error
}

// InboundEmailRepositoryInterface defines the interface for inbound email repository operations
type InboundEmailRepositoryInterface interface {
	Create(email *models.InboundEmail) error
	GetByID(id uuid.UUID) (*models.InboundEmail, error)
	GetByIDInWorkspace(id, workspaceID uuid.UUID) (*models.InboundEmail, error)
	GetByWorkspaceID(workspaceID uuid.UUID, limit, offset int) ([]models.InboundEmail, int64, error)
	GetUnassociated(workspaceID uuid.UUID, limit, offset int) ([]models.InboundEmail, int64, error)
	Update(email *models.InboundEmail) error
}
