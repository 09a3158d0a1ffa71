package repository

import (
	"crm-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkspaceRepository handles database operations for workspaces
type WorkspaceRepository struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// Create creates a new workspace
func (r *WorkspaceRepository) Create(workspace *models.Workspace) error {
	return r.db.Create(workspace).Error
}

// GetByID retrieves a workspace by ID
func (r *WorkspaceRepository) GetByID(id uuid.UUID) (*models.Workspace, error) {
	var workspace models.Workspace
	err := r.db.First(&workspace, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

// GetByName retrieves a workspace by name
func (r *WorkspaceRepository) GetByName(name string) (*models.Workspace, error) {
	var workspace models.Workspace
	err := r.db.First(&workspace, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

// Update updates a workspace
func (r *WorkspaceRepository) Update(workspace *models.Workspace) error {
	return r.db.Save(workspace).Error
}

// Delete deletes a workspace
func (r *WorkspaceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Workspace{}, "id = ?", id).Error
}
