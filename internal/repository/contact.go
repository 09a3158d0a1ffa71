package repository

import (
	"crm-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactRepository handles database operations for contacts
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create creates a new contact
func (r *ContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// GetByID retrieves a contact by ID without workspace confinement. Reserved
// for the association resolver; scoped callers use GetByIDInWorkspace.
func (r *ContactRepository) GetByID(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetByIDInWorkspace retrieves a contact by ID, confined to the workspace
// through its owning business.
func (r *ContactRepository) GetByIDInWorkspace(id, workspaceID uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.
		Joins("JOIN businesses ON businesses.id = contacts.business_id").
		Where("contacts.id = ? AND businesses.workspace_id = ?", id, workspaceID).
		First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetByBusinessID retrieves all contacts of a business
func (r *ContactRepository) GetByBusinessID(businessID uuid.UUID) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Where("business_id = ?", businessID).
		Order("name ASC").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// GetFirstByEmails retrieves the oldest contact whose stored email is in the
// candidate set, with its owning business loaded. Unscoped on purpose, same as
// BusinessRepository.GetFirstByEmails.
func (r *ContactRepository) GetFirstByEmails(emails []string) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.Preload("Business").
		Where("LOWER(email) IN ?", emails).
		Order("created_at ASC, id ASC").
		First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Update updates a contact
func (r *ContactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// Delete deletes a contact
func (r *ContactRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Contact{}, "id = ?", id).Error
}
