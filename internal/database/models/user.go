package models

import "github.com/google/uuid"

// User represents an authenticated person. A user belongs to at most one
// workspace; a user without a workspace cannot perform any workspace-scoped
// operation.
type User struct {
	BaseModel
	Email       string     `json:"email" gorm:"uniqueIndex;not null;size:200" validate:"required,email,max=200"`
	Name        string     `json:"name" gorm:"size:100" validate:"max=100"`
	WorkspaceID *uuid.UUID `json:"workspace_id" gorm:"type:uuid;index"`

	Workspace *Workspace `json:"workspace,omitempty" gorm:"foreignKey:WorkspaceID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
