package repository

import (
	"crm-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InboundEmailRepository handles database operations for inbound emails
type InboundEmailRepository struct {
	db *gorm.DB
}

// NewInboundEmailRepository creates a new inbound email repository
func NewInboundEmailRepository(db *gorm.DB) *InboundEmailRepository {
	return &InboundEmailRepository{db: db}
}

// Create creates a new inbound email
func (r *InboundEmailRepository) Create(email *models.InboundEmail) error {
	return r.db.Create(email).Error
}

// GetByID retrieves an inbound email by ID without workspace confinement.
// Reserved for the association resolver, which is workspace-agnostic.
func (r *InboundEmailRepository) GetByID(id uuid.UUID) (*models.InboundEmail, error) {
	var email models.InboundEmail
	err := r.db.First(&email, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &email, nil
}

// GetByIDInWorkspace retrieves an inbound email by ID, confined to the workspace
func (r *InboundEmailRepository) GetByIDInWorkspace(id, workspaceID uuid.UUID) (*models.InboundEmail, error) {
	var email models.InboundEmail
	err := r.db.First(&email, "id = ? AND workspace_id = ?", id, workspaceID).Error
	if err != nil {
		return nil, err
	}
	return &email, nil
}

// GetByWorkspaceID retrieves inbound emails of a workspace with pagination
func (r *InboundEmailRepository) GetByWorkspaceID(workspaceID uuid.UUID, limit, offset int) ([]models.InboundEmail, int64, error) {
	var emails []models.InboundEmail
	var total int64

	query := r.db.Model(&models.InboundEmail{}).Where("workspace_id = ?", workspaceID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("received_at DESC").Find(&emails).Error
	if err != nil {
		return nil, 0, err
	}

	return emails, total, nil
}

// GetUnassociated retrieves emails awaiting manual triage
func (r *InboundEmailRepository) GetUnassociated(workspaceID uuid.UUID, limit, offset int) ([]models.InboundEmail, int64, error) {
	var emails []models.InboundEmail
	var total int64

	query := r.db.Model(&models.InboundEmail{}).
		Where("workspace_id = ? AND business_id IS NULL", workspaceID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("received_at DESC").Find(&emails).Error
	if err != nil {
		return nil, 0, err
	}

	return emails, total, nil
}

// Update updates an inbound email
func (r *InboundEmailRepository) Update(email *models.InboundEmail) error {
	return r.db.Save(email).Error
}
