package models

import "github.com/google/uuid"

// JobApplication represents a hiring pipeline record. It exists here mainly as
// an anchor kind: tickets and activities attached to an application inherit
// its workspace membership.
type JobApplication struct {
	BaseModel
	WorkspaceID   uuid.UUID  `json:"workspace_id" gorm:"type:uuid;not null;index"`
	BusinessID    *uuid.UUID `json:"business_id" gorm:"type:uuid;index"`
	CandidateName string     `json:"candidate_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Role          string     `json:"role" gorm:"size:100" validate:"max=100"`
	Status        string     `json:"status" gorm:"size:40;not null;default:'received'"`

	Workspace *Workspace `json:"workspace,omitempty" gorm:"foreignKey:WorkspaceID"`
	Business  *Business  `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
}

// TableName returns the table name for JobApplication
func (JobApplication) TableName() string {
	return "job_applications"
}

// AnchorWorkspaceIDs implements scope.Anchored
func (j *JobApplication) AnchorWorkspaceIDs() []uuid.UUID {
	return []uuid.UUID{j.WorkspaceID}
}
