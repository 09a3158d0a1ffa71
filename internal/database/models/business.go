package models

import "github.com/google/uuid"

// Business represents a company record moving through the sales pipeline.
// It anchors tickets, activities and inbound emails to its workspace.
type Business struct {
	BaseModel
	WorkspaceID uuid.UUID      `json:"workspace_id" gorm:"type:uuid;not null;index"`
	Name        string         `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Email       string         `json:"email" gorm:"size:200;index" validate:"omitempty,email,max=200"`
	Phone       string         `json:"phone" gorm:"size:40" validate:"max=40"`
	Website     string         `json:"website" gorm:"size:200" validate:"max=200"`
	Stage       BusinessStage  `json:"stage" gorm:"size:40;not null;default:'lead'"`
	Status      BusinessStatus `json:"status" gorm:"size:40;not null;default:'active'"`

	// Relationships
	Workspace *Workspace `json:"workspace,omitempty" gorm:"foreignKey:WorkspaceID"`
	Contacts  []Contact  `json:"contacts,omitempty" gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Business
func (Business) TableName() string {
	return "businesses"
}

// AnchorWorkspaceIDs implements scope.Anchored. A business carries its
// workspace directly.
func (b *Business) AnchorWorkspaceIDs() []uuid.UUID {
	return []uuid.UUID{b.WorkspaceID}
}
