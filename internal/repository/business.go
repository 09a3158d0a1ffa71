package repository

import (
	"crm-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessRepository handles database operations for businesses
type BusinessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a new business repository
func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

// Create creates a new business
func (r *BusinessRepository) Create(business *models.Business) error {
	return r.db.Create(business).Error
}

// GetByIDInWorkspace retrieves a business by ID, confined to the workspace.
// An id from another workspace yields gorm.ErrRecordNotFound.
func (r *BusinessRepository) GetByIDInWorkspace(id, workspaceID uuid.UUID) (*models.Business, error) {
	var business models.Business
	err := r.db.Preload("Contacts").
		First(&business, "id = ? AND workspace_id = ?", id, workspaceID).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// GetByWorkspaceID retrieves businesses of a workspace with pagination
func (r *BusinessRepository) GetByWorkspaceID(workspaceID uuid.UUID, limit, offset int) ([]models.Business, int64, error) {
	var businesses []models.Business
	var total int64

	query := r.db.Model(&models.Business{}).Where("workspace_id = ?", workspaceID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("name ASC").Find(&businesses).Error
	if err != nil {
		return nil, 0, err
	}

	return businesses, total, nil
}

// GetByStageInWorkspace retrieves businesses of a workspace at a pipeline stage
func (r *BusinessRepository) GetByStageInWorkspace(workspaceID uuid.UUID, stage models.BusinessStage, limit, offset int) ([]models.Business, int64, error) {
	var businesses []models.Business
	var total int64

	query := r.db.Model(&models.Business{}).
		Where("workspace_id = ? AND stage = ?", workspaceID, stage)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("name ASC").Find(&businesses).Error
	if err != nil {
		return nil, 0, err
	}

	return businesses, total, nil
}

// GetFirstByEmails retrieves the oldest business whose own email is in the
// candidate set. Used by the association resolver; deliberately unscoped since
// the inbound channel is pre-scoped to one workspace's mailbox.
func (r *BusinessRepository) GetFirstByEmails(emails []string) (*models.Business, error) {
	var business models.Business
	err := r.db.Where("LOWER(email) IN ?", emails).
		Order("created_at ASC, id ASC").
		First(&business).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// Update updates a business
func (r *BusinessRepository) Update(business *models.Business) error {
	return r.db.Save(business).Error
}

// Delete deletes a business
func (r *BusinessRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Business{}, "id = ?", id).Error
}
