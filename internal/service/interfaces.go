package service

import (
	"crm-portal-backend/internal/scope"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// BusinessServiceInterface defines the interface for business service
type BusinessServiceInterface interface {
	Create(sc scope.Scope, req *CreateBusinessRequest) (*BusinessResponse, error)
	GetByID(sc scope.Scope, id uuid.UUID) (*BusinessResponse, error)
	List(sc scope.Scope, page, pageSize int) (*BusinessListResponse, error)
	ListByStage(sc scope.Scope, stage string, page, pageSize int) (*BusinessListResponse, error)
	Update(sc scope.Scope, id uuid.UUID, req *UpdateBusinessRequest) (*BusinessResponse, error)
	UpdateStage(sc scope.Scope, id uuid.UUID, req *UpdateStageRequest) (*BusinessResponse, error)
	Delete(sc scope.Scope, id uuid.UUID) error
	StageCatalog() []StageCatalogEntry
}

// ContactServiceInterface defines the interface for contact service
type ContactServiceInterface interface {
	Create(sc scope.Scope, businessID uuid.UUID, req *CreateContactRequest) (*ContactResponse, error)
	ListByBusiness(sc scope.Scope, businessID uuid.UUID) ([]ContactResponse, error)
	Update(sc scope.Scope, id uuid.UUID, req *UpdateContactRequest) (*ContactResponse, error)
	Delete(sc scope.Scope, id uuid.UUID) error
}

// TicketServiceInterface defines the interface for ticket service
type TicketServiceInterface interface {
	Create(sc scope.Scope, req *CreateTicketRequest) (*TicketResponse, error)
	GetByID(sc scope.Scope, id uuid.UUID) (*TicketResponse, error)
	List(sc scope.Scope, page, pageSize int) (*TicketListResponse, error)
	Update(sc scope.Scope, id uuid.UUID, req *UpdateTicketRequest) (*TicketResponse, error)
	UpdateStatus(sc scope.Scope, id uuid.UUID, req *UpdateTicketStatusRequest) (*TicketResponse, error)
	Assign(sc scope.Scope, id uuid.UUID, req *AssignTicketRequest) (*TicketResponse, error)
	Delete(sc scope.Scope, id uuid.UUID) error
	AddComment(sc scope.Scope, ticketID uuid.UUID, req *AddCommentRequest) (*TicketCommentResponse, error)
	ListComments(sc scope.Scope, ticketID uuid.UUID) ([]TicketCommentResponse, error)
}

// ActivityServiceInterface defines the interface for activity service
type ActivityServiceInterface interface {
	Create(sc scope.Scope, req *CreateActivityRequest) (*ActivityResponse, error)
	Complete(sc scope.Scope, id uuid.UUID, req *CompleteActivityRequest) (*ActivityResponse, error)
	Upcoming(sc scope.Scope, limit int) ([]ActivityResponse, error)
	ListByBusiness(sc scope.Scope, businessID uuid.UUID, page, pageSize int) (*ActivityListResponse, error)
	ListByTicket(sc scope.Scope, ticketID uuid.UUID, page, pageSize int) (*ActivityListResponse, error)
}

// EmailServiceInterface defines the interface for inbound email service
type EmailServiceInterface interface {
	Ingest(sc scope.Scope, req *IngestEmailRequest) (*EmailResponse, error)
	GetByID(sc scope.Scope, id uuid.UUID) (*EmailResponse, error)
	List(sc scope.Scope, page, pageSize int) (*EmailListResponse, error)
	ListUnassociated(sc scope.Scope, page, pageSize int) (*EmailListResponse, error)
	Associate(emailID uuid.UUID) (*AssociationResult, error)
	ManualAssociate(sc scope.Scope, emailID uuid.UUID, req *ManualAssociateRequest) (*EmailResponse, error)
}

// FeedServiceInterface defines the interface for the dashboard feed service
type FeedServiceInterface interface {
	GetFeed(sc scope.Scope, limit int) (*FeedResponse, error)
	GetBadgeCounts(sc scope.Scope) (*BadgeCountsResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Me(sc scope.Scope) (*UserResponse, error)
}
