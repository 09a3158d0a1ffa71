package models

import "github.com/google/uuid"

// Contact represents a person associated with exactly one business. The email
// address is the key used by inbound email association.
type Contact struct {
	BaseModel
	BusinessID uuid.UUID `json:"business_id" gorm:"type:uuid;not null;index"`
	Name       string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Email      string    `json:"email" gorm:"size:200;index" validate:"omitempty,email,max=200"`
	Phone      string    `json:"phone" gorm:"size:40" validate:"max=40"`
	Position   string    `json:"position" gorm:"size:100" validate:"max=100"`

	Business *Business `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
}

// TableName returns the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}
