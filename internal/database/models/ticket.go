package models

import (
	"time"

	"github.com/google/uuid"
)

// Ticket represents a support item. Workspace membership may be carried
// directly or inherited through the business or job application anchor; the
// direct column is a denormalization that avoids a join on every guard check.
type Ticket struct {
	BaseModel
	WorkspaceID      *uuid.UUID     `json:"workspace_id" gorm:"type:uuid;index"`
	BusinessID       *uuid.UUID     `json:"business_id" gorm:"type:uuid;index"`
	JobApplicationID *uuid.UUID     `json:"job_application_id" gorm:"type:uuid;index"`
	Subject          string         `json:"subject" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description      string         `json:"description" gorm:"type:text"`
	Status           TicketStatus   `json:"status" gorm:"size:40;not null;default:'unassigned'"`
	Priority         TicketPriority `json:"priority" gorm:"size:40;not null;default:'medium'"`
	AssigneeID       *uuid.UUID     `json:"assignee_id" gorm:"type:uuid;index"`
	ResolvedAt       *time.Time     `json:"resolved_at"`

	// Relationships
	Workspace      *Workspace      `json:"workspace,omitempty" gorm:"foreignKey:WorkspaceID"`
	Business       *Business       `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	JobApplication *JobApplication `json:"job_application,omitempty" gorm:"foreignKey:JobApplicationID"`
	Assignee       *User           `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	Comments       []TicketComment `json:"comments,omitempty" gorm:"foreignKey:TicketID"`
}

// TableName returns the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}

// AnchorWorkspaceIDs implements scope.Anchored. Membership is a logical OR
// across the direct column and every loaded parent anchor.
func (t *Ticket) AnchorWorkspaceIDs() []uuid.UUID {
	var ids []uuid.UUID
	if t.WorkspaceID != nil {
		ids = append(ids, *t.WorkspaceID)
	}
	if t.Business != nil {
		ids = append(ids, t.Business.AnchorWorkspaceIDs()...)
	}
	if t.JobApplication != nil {
		ids = append(ids, t.JobApplication.AnchorWorkspaceIDs()...)
	}
	return ids
}

// ApplyStatus assigns a new status and maintains the resolved_at invariant:
// resolved_at is set exactly when the ticket sits in resolved or closed.
// Entering the resolved states stamps the given time; leaving them clears the
// stamp; staying inside them leaves an existing stamp untouched.
func (t *Ticket) ApplyStatus(newStatus TicketStatus, now time.Time) {
	wasResolved := t.Status.IsResolved()
	switch {
	case newStatus.IsResolved() && !wasResolved:
		stamp := now
		t.ResolvedAt = &stamp
	case !newStatus.IsResolved() && wasResolved:
		t.ResolvedAt = nil
	}
	t.Status = newStatus
}

// TicketComment represents a comment on a ticket
type TicketComment struct {
	BaseModel
	TicketID uuid.UUID `json:"ticket_id" gorm:"type:uuid;not null;index"`
	AuthorID uuid.UUID `json:"author_id" gorm:"type:uuid;not null"`
	Body     string    `json:"body" gorm:"type:text;not null" validate:"required,min=1"`

	Ticket *Ticket `json:"ticket,omitempty" gorm:"foreignKey:TicketID"`
	Author *User   `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for TicketComment
func (TicketComment) TableName() string {
	return "ticket_comments"
}
