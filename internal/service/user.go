package service

import (
	"errors"
	"fmt"
	"time"

	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/repository"
	"crm-portal-backend/internal/scope"

	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	repo          repository.UserRepositoryInterface
	workspaceRepo repository.WorkspaceRepositoryInterface
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, workspaceRepo repository.WorkspaceRepositoryInterface) *UserService {
	return &UserService{
		repo:          repo,
		workspaceRepo: workspaceRepo,
	}
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	WorkspaceID   string `json:"workspace_id"`
	WorkspaceName string `json:"workspace_name"`
	CreatedAt     string `json:"created_at"`
}

// Me returns the caller's own profile with workspace details
func (s *UserService) Me(sc scope.Scope) (*UserResponse, error) {
	user, err := s.repo.GetByID(sc.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	workspace, err := s.workspaceRepo.GetByID(sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return &UserResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		Name:          user.Name,
		WorkspaceID:   workspace.ID.String(),
		WorkspaceName: workspace.Name,
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
	}, nil
}
