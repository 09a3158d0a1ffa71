package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity represents a scheduled, completable unit of follow-up work (call,
// meeting, task) attached to a business, a contact's business, a ticket, or a
// job application. Attribution to the creating user is retained.
type Activity struct {
	BaseModel
	Type             ActivityType `json:"type" gorm:"size:40;not null" validate:"required"`
	Date             time.Time    `json:"date" gorm:"not null;index"`
	Completed        bool         `json:"completed" gorm:"not null;default:false;index"`
	Outcome          string       `json:"outcome" gorm:"type:text"`
	BusinessID       *uuid.UUID   `json:"business_id" gorm:"type:uuid;index"`
	ContactID        *uuid.UUID   `json:"contact_id" gorm:"type:uuid;index"`
	TicketID         *uuid.UUID   `json:"ticket_id" gorm:"type:uuid;index"`
	JobApplicationID *uuid.UUID   `json:"job_application_id" gorm:"type:uuid;index"`
	CreatedBy        uuid.UUID    `json:"created_by" gorm:"type:uuid;not null"`

	// Relationships
	Business       *Business       `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	Contact        *Contact        `json:"contact,omitempty" gorm:"foreignKey:ContactID"`
	Ticket         *Ticket         `json:"ticket,omitempty" gorm:"foreignKey:TicketID"`
	JobApplication *JobApplication `json:"job_application,omitempty" gorm:"foreignKey:JobApplicationID"`
	Creator        *User           `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
}

// TableName returns the table name for Activity
func (Activity) TableName() string {
	return "activities"
}

// AnchorWorkspaceIDs implements scope.Anchored. An activity inherits
// membership through whichever parent anchors are loaded, including the
// ticket's own transitive anchors.
func (a *Activity) AnchorWorkspaceIDs() []uuid.UUID {
	var ids []uuid.UUID
	if a.Business != nil {
		ids = append(ids, a.Business.AnchorWorkspaceIDs()...)
	}
	if a.JobApplication != nil {
		ids = append(ids, a.JobApplication.AnchorWorkspaceIDs()...)
	}
	if a.Ticket != nil {
		ids = append(ids, a.Ticket.AnchorWorkspaceIDs()...)
	}
	return ids
}
