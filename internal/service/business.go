package service

import (
	"errors"
	"fmt"
	"time"

	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/notify"
	"crm-portal-backend/internal/repository"
	"crm-portal-backend/internal/scope"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessService handles business logic for businesses and the sales
// pipeline. Stage assignment is direct: the pipeline carries no transition
// graph, deliberately.
type BusinessService struct {
	repo        repository.BusinessRepositoryInterface
	validator   *validator.Validate
	invalidator notify.Invalidator
}

// NewBusinessService creates a new business service
func NewBusinessService(repo repository.BusinessRepositoryInterface, validator *validator.Validate, invalidator notify.Invalidator) *BusinessService {
	return &BusinessService{
		repo:        repo,
		validator:   validator,
		invalidator: invalidator,
	}
}

// CreateBusinessRequest represents the request to create a business
type CreateBusinessRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email,omitempty" validate:"omitempty,email,max=200"`
	Phone   string `json:"phone,omitempty" validate:"max=40"`
	Website string `json:"website,omitempty" validate:"max=200"`
	Stage   string `json:"stage,omitempty"`
}

// UpdateBusinessRequest represents the request to update a business
type UpdateBusinessRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email,omitempty" validate:"omitempty,email,max=200"`
	Phone   string `json:"phone,omitempty" validate:"max=40"`
	Website string `json:"website,omitempty" validate:"max=200"`
	Status  string `json:"status,omitempty"`
}

// UpdateStageRequest represents the request to move a business through the pipeline
type UpdateStageRequest struct {
	Stage string `json:"stage" validate:"required"`
}

// BusinessResponse represents the response for business operations
type BusinessResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Website   string           `json:"website"`
	Stage     string           `json:"stage"`
	StageInfo models.StageInfo `json:"stage_info"`
	Status    string           `json:"status"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
}

// BusinessListResponse represents a paginated list of businesses
type BusinessListResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}

// StageCatalogEntry pairs a pipeline stage with its presentation triple
type StageCatalogEntry struct {
	Stage string           `json:"stage"`
	Info  models.StageInfo `json:"info"`
}

// Create creates a new business in the caller's workspace
func (s *BusinessService) Create(sc scope.Scope, req *CreateBusinessRequest) (*BusinessResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	stage := models.BusinessStageLead
	if req.Stage != "" {
		stage = models.BusinessStage(req.Stage)
		if !stage.IsValid() {
			return nil, apperrors.ErrInvalidStage
		}
	}

	business := &models.Business{
		WorkspaceID: sc.WorkspaceID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Website:     req.Website,
		Stage:       stage,
		Status:      models.BusinessStatusActive,
	}

	if err := s.repo.Create(business); err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	s.invalidator.Invalidate("/businesses")
	return s.toResponse(business), nil
}

// GetByID retrieves a business confined to the caller's workspace
func (s *BusinessService) GetByID(sc scope.Scope, id uuid.UUID) (*BusinessResponse, error) {
	business, err := s.repo.GetByIDInWorkspace(id, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return s.toResponse(business), nil
}

// List retrieves businesses of the caller's workspace with pagination
func (s *BusinessService) List(sc scope.Scope, page, pageSize int) (*BusinessListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	businesses, total, err := s.repo.GetByWorkspaceID(sc.WorkspaceID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}

	return s.toListResponse(businesses, total, page, pageSize), nil
}

// ListByStage retrieves businesses at a pipeline stage
func (s *BusinessService) ListByStage(sc scope.Scope, stage string, page, pageSize int) (*BusinessListResponse, error) {
	businessStage := models.BusinessStage(stage)
	if !businessStage.IsValid() {
		return nil, apperrors.ErrInvalidStage
	}
	page, pageSize = normalizePagination(page, pageSize)

	businesses, total, err := s.repo.GetByStageInWorkspace(sc.WorkspaceID, businessStage, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses by stage: %w", err)
	}

	return s.toListResponse(businesses, total, page, pageSize), nil
}

// Update updates a business. The row is re-read before saving; concurrent
// writers are last-writer-wins with no lost-update detection (known
// limitation).
func (s *BusinessService) Update(sc scope.Scope, id uuid.UUID, req *UpdateBusinessRequest) (*BusinessResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	business, err := s.repo.GetByIDInWorkspace(id, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	business.Name = req.Name
	business.Email = req.Email
	business.Phone = req.Phone
	business.Website = req.Website
	if req.Status != "" {
		status := models.BusinessStatus(req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", "invalid business status")
		}
		business.Status = status
	}

	if err := s.repo.Update(business); err != nil {
		return nil, fmt.Errorf("failed to update business: %w", err)
	}

	s.invalidator.Invalidate(fmt.Sprintf("/businesses/%s", business.ID))
	return s.toResponse(business), nil
}

// UpdateStage moves a business to a pipeline stage. This is the only code
// path that assigns Stage; any stage is reachable from any stage.
func (s *BusinessService) UpdateStage(sc scope.Scope, id uuid.UUID, req *UpdateStageRequest) (*BusinessResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	stage := models.BusinessStage(req.Stage)
	if !stage.IsValid() {
		return nil, apperrors.ErrInvalidStage
	}

	business, err := s.repo.GetByIDInWorkspace(id, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	business.Stage = stage

	if err := s.repo.Update(business); err != nil {
		return nil, fmt.Errorf("failed to update business stage: %w", err)
	}

	s.invalidator.Invalidate(fmt.Sprintf("/businesses/%s", business.ID))
	return s.toResponse(business), nil
}

// Delete deletes a business after confirming workspace membership
func (s *BusinessService) Delete(sc scope.Scope, id uuid.UUID) error {
	business, err := s.repo.GetByIDInWorkspace(id, sc.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBusinessNotFound
		}
		return fmt.Errorf("failed to get business: %w", err)
	}

	if err := s.repo.Delete(business.ID); err != nil {
		return fmt.Errorf("failed to delete business: %w", err)
	}

	s.invalidator.Invalidate("/businesses")
	return nil
}

// StageCatalog returns every pipeline stage with its presentation triple
func (s *BusinessService) StageCatalog() []StageCatalogEntry {
	stages := models.AllStages()
	entries := make([]StageCatalogEntry, len(stages))
	for i, stage := range stages {
		entries[i] = StageCatalogEntry{Stage: string(stage), Info: stage.Info()}
	}
	return entries
}

func (s *BusinessService) toResponse(business *models.Business) *BusinessResponse {
	return &BusinessResponse{
		ID:        business.ID,
		Name:      business.Name,
		Email:     business.Email,
		Phone:     business.Phone,
		Website:   business.Website,
		Stage:     string(business.Stage),
		StageInfo: business.Stage.Info(),
		Status:    string(business.Status),
		CreatedAt: business.CreatedAt.Format(time.RFC3339),
		UpdatedAt: business.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *BusinessService) toListResponse(businesses []models.Business, total int64, page, pageSize int) *BusinessListResponse {
	responses := make([]BusinessResponse, len(businesses))
	for i := range businesses {
		responses[i] = *s.toResponse(&businesses[i])
	}
	return &BusinessListResponse{
		Businesses: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}
}

// normalizePagination clamps page/pageSize to sane bounds
func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
