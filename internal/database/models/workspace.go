package models

// Workspace represents the root entity for multi-tenancy. All business data
// is partitioned by exactly one workspace.
type Workspace struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`

	// Relationships
	Users           []User           `json:"users,omitempty" gorm:"foreignKey:WorkspaceID"`
	Businesses      []Business       `json:"businesses,omitempty" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
	JobApplications []JobApplication `json:"job_applications,omitempty" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
	Tickets         []Ticket         `json:"tickets,omitempty" gorm:"foreignKey:WorkspaceID"`
	InboundEmails   []InboundEmail   `json:"inbound_emails,omitempty" gorm:"foreignKey:WorkspaceID"`
}

// TableName returns the table name for Workspace
func (Workspace) TableName() string {
	return "workspaces"
}
