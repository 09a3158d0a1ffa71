package testutils

import (
	"time"

	"crm-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// WorkspaceFactory provides methods to create test Workspace data
type WorkspaceFactory struct{}

// NewWorkspaceFactory creates a new WorkspaceFactory
func NewWorkspaceFactory() *WorkspaceFactory {
	return &WorkspaceFactory{}
}

// Create creates a test Workspace with default values
func (f *WorkspaceFactory) Create() *models.Workspace {
	id := uuid.New()
	return &models.Workspace{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique name per instance to satisfy the unique index
		Name: "Test Workspace " + id.String()[:8],
	}
}

// WithName sets a custom name for the workspace
func (f *WorkspaceFactory) WithName(name string) *models.Workspace {
	ws := f.Create()
	ws.Name = name
	return ws
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The email is derived from
// the ID to keep the unique index happy across tests.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:       "user-" + id.String()[:8] + "@test.com",
		Name:        "Jane Doe",
		WorkspaceID: nil,
	}
}

// WithWorkspace sets the workspace ID for the user
func (f *UserFactory) WithWorkspace(workspaceID uuid.UUID) *models.User {
	user := f.Create()
	user.WorkspaceID = &workspaceID
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// BusinessFactory provides methods to create test Business data
type BusinessFactory struct{}

// NewBusinessFactory creates a new BusinessFactory
func NewBusinessFactory() *BusinessFactory {
	return &BusinessFactory{}
}

// Create creates a test Business with default values
func (f *BusinessFactory) Create() *models.Business {
	return &models.Business{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		WorkspaceID: uuid.New(),
		Name:        "Acme Corp",
		Email:       "info@acme.test",
		Phone:       "+1-555-0100",
		Website:     "https://acme.test",
		Stage:       models.BusinessStageLead,
		Status:      models.BusinessStatusActive,
	}
}

// WithWorkspace sets the workspace ID for the business
func (f *BusinessFactory) WithWorkspace(workspaceID uuid.UUID) *models.Business {
	business := f.Create()
	business.WorkspaceID = workspaceID
	return business
}

// WithStage sets the pipeline stage for the business
func (f *BusinessFactory) WithStage(workspaceID uuid.UUID, stage models.BusinessStage) *models.Business {
	business := f.WithWorkspace(workspaceID)
	business.Stage = stage
	return business
}

// WithEmail sets a custom email for the business
func (f *BusinessFactory) WithEmail(workspaceID uuid.UUID, email string) *models.Business {
	business := f.WithWorkspace(workspaceID)
	business.Email = email
	return business
}

// ContactFactory provides methods to create test Contact data
type ContactFactory struct{}

// NewContactFactory creates a new ContactFactory
func NewContactFactory() *ContactFactory {
	return &ContactFactory{}
}

// Create creates a test Contact with default values
func (f *ContactFactory) Create() *models.Contact {
	return &models.Contact{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BusinessID: uuid.New(),
		Name:       "John Smith",
		Email:      "john.smith@acme.test",
		Phone:      "+1-555-0123",
		Position:   "CTO",
	}
}

// WithBusiness sets the business ID for the contact
func (f *ContactFactory) WithBusiness(businessID uuid.UUID) *models.Contact {
	contact := f.Create()
	contact.BusinessID = businessID
	return contact
}

// WithEmail sets a custom email for the contact
func (f *ContactFactory) WithEmail(businessID uuid.UUID, email string) *models.Contact {
	contact := f.WithBusiness(businessID)
	contact.Email = email
	return contact
}

// JobApplicationFactory provides methods to create test JobApplication data
type JobApplicationFactory struct{}

// NewJobApplicationFactory creates a new JobApplicationFactory
func NewJobApplicationFactory() *JobApplicationFactory {
	return &JobApplicationFactory{}
}

// Create creates a test JobApplication with default values
func (f *JobApplicationFactory) Create() *models.JobApplication {
	return &models.JobApplication{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		WorkspaceID:   uuid.New(),
		BusinessID:    nil,
		CandidateName: "Sam Candidate",
		Role:          "Backend Engineer",
		Status:        "received",
	}
}

// WithWorkspace sets the workspace ID for the job application
func (f *JobApplicationFactory) WithWorkspace(workspaceID uuid.UUID) *models.JobApplication {
	app := f.Create()
	app.WorkspaceID = workspaceID
	return app
}

// TicketFactory provides methods to create test Ticket data
type TicketFactory struct{}

// NewTicketFactory creates a new TicketFactory
func NewTicketFactory() *TicketFactory {
	return &TicketFactory{}
}

// Create creates a test Ticket anchored directly to a fresh workspace
func (f *TicketFactory) Create() *models.Ticket {
	workspaceID := uuid.New()
	return &models.Ticket{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		WorkspaceID: &workspaceID,
		Subject:     "Printer on fire",
		Description: "The office printer is emitting smoke",
		Status:      models.TicketStatusUnassigned,
		Priority:    models.TicketPriorityMedium,
	}
}

// WithWorkspace anchors the ticket directly to the given workspace
func (f *TicketFactory) WithWorkspace(workspaceID uuid.UUID) *models.Ticket {
	ticket := f.Create()
	ticket.WorkspaceID = &workspaceID
	return ticket
}

// WithBusiness anchors the ticket through a business only, leaving the direct
// workspace column empty
func (f *TicketFactory) WithBusiness(businessID uuid.UUID) *models.Ticket {
	ticket := f.Create()
	ticket.WorkspaceID = nil
	ticket.BusinessID = &businessID
	return ticket
}

// WithJobApplication anchors the ticket through a job application only
func (f *TicketFactory) WithJobApplication(jobApplicationID uuid.UUID) *models.Ticket {
	ticket := f.Create()
	ticket.WorkspaceID = nil
	ticket.JobApplicationID = &jobApplicationID
	return ticket
}

// WithStatus sets the ticket status, stamping resolved_at via ApplyStatus
func (f *TicketFactory) WithStatus(workspaceID uuid.UUID, status models.TicketStatus) *models.Ticket {
	ticket := f.WithWorkspace(workspaceID)
	ticket.ApplyStatus(status, time.Now())
	return ticket
}

// WithAssignee sets the assignee for the ticket
func (f *TicketFactory) WithAssignee(workspaceID, assigneeID uuid.UUID) *models.Ticket {
	ticket := f.WithWorkspace(workspaceID)
	ticket.Status = models.TicketStatusOpen
	ticket.AssigneeID = &assigneeID
	return ticket
}

// ActivityFactory provides methods to create test Activity data
type ActivityFactory struct{}

// NewActivityFactory creates a new ActivityFactory
func NewActivityFactory() *ActivityFactory {
	return &ActivityFactory{}
}

// Create creates a test Activity anchored to a fresh business, due tomorrow
func (f *ActivityFactory) Create() *models.Activity {
	businessID := uuid.New()
	return &models.Activity{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Type:       models.ActivityTypeCall,
		Date:       time.Now().Add(24 * time.Hour),
		Completed:  false,
		BusinessID: &businessID,
		CreatedBy:  uuid.New(),
	}
}

// WithBusiness anchors the activity to the given business
func (f *ActivityFactory) WithBusiness(businessID uuid.UUID) *models.Activity {
	activity := f.Create()
	activity.BusinessID = &businessID
	return activity
}

// WithTicket anchors the activity to a ticket instead of a business
func (f *ActivityFactory) WithTicket(ticketID uuid.UUID) *models.Activity {
	activity := f.Create()
	activity.BusinessID = nil
	activity.TicketID = &ticketID
	return activity
}

// WithDate sets the scheduled date for the activity
func (f *ActivityFactory) WithDate(businessID uuid.UUID, date time.Time) *models.Activity {
	activity := f.WithBusiness(businessID)
	activity.Date = date
	return activity
}

// Completed marks the activity as completed with an outcome
func (f *ActivityFactory) Completed(businessID uuid.UUID, outcome string) *models.Activity {
	activity := f.WithBusiness(businessID)
	activity.Completed = true
	activity.Outcome = outcome
	return activity
}

// InboundEmailFactory provides methods to create test InboundEmail data
type InboundEmailFactory struct{}

// NewInboundEmailFactory creates a new InboundEmailFactory
func NewInboundEmailFactory() *InboundEmailFactory {
	return &InboundEmailFactory{}
}

// Create creates a test InboundEmail with default values, unassociated
func (f *InboundEmailFactory) Create() *models.InboundEmail {
	return &models.InboundEmail{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		WorkspaceID: uuid.New(),
		FromEmail:   "sender@external.test",
		ToEmails:    []string{"support@acme.test"},
		Subject:     "Question about invoice",
		Body:        "Hello, I have a question about my latest invoice.",
		ReceivedAt:  time.Now(),
	}
}

// WithWorkspace sets the ingesting workspace for the email
func (f *InboundEmailFactory) WithWorkspace(workspaceID uuid.UUID) *models.InboundEmail {
	email := f.Create()
	email.WorkspaceID = workspaceID
	return email
}

// WithFrom sets the sender address for the email
func (f *InboundEmailFactory) WithFrom(workspaceID uuid.UUID, fromEmail string) *models.InboundEmail {
	email := f.WithWorkspace(workspaceID)
	email.FromEmail = fromEmail
	return email
}

// Associated creates an email already linked to a business and contact
func (f *InboundEmailFactory) Associated(workspaceID, businessID, contactID uuid.UUID) *models.InboundEmail {
	email := f.WithWorkspace(workspaceID)
	email.BusinessID = &businessID
	email.ContactID = &contactID
	return email
}
