package repository

import (
	"crm-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobApplicationRepository handles database operations for job applications
type JobApplicationRepository struct {
	db *gorm.DB
}

// NewJobApplicationRepository creates a new job application repository
func NewJobApplicationRepository(db *gorm.DB) *JobApplicationRepository {
	return &JobApplicationRepository{db: db}
}

// Create creates a new job application
func (r *JobApplicationRepository) Create(application *models.JobApplication) error {
	return r.db.Create(application).Error
}

// GetByIDInWorkspace retrieves a job application by ID, confined to the workspace
func (r *JobApplicationRepository) GetByIDInWorkspace(id, workspaceID uuid.UUID) (*models.JobApplication, error) {
	var application models.JobApplication
	err := r.db.First(&application, "id = ? AND workspace_id = ?", id, workspaceID).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// GetByWorkspaceID retrieves job applications of a workspace with pagination
func (r *JobApplicationRepository) GetByWorkspaceID(workspaceID uuid.UUID, limit, offset int) ([]models.JobApplication, int64, error) {
	var applications []models.JobApplication
	var total int64

	query := r.db.Model(&models.JobApplication{}).Where("workspace_id = ?", workspaceID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&applications).Error
	if err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

// Update updates a job application
func (r *JobApplicationRepository) Update(application *models.JobApplication) error {
	return r.db.Save(application).Error
}

// Delete deletes a job application
func (r *JobApplicationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.JobApplication{}, "id = ?", id).Error
}
