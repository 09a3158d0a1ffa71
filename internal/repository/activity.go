package repository

import (
	"time"

	"crm-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityRepository handles database operations for activities
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// scoped returns an activity query confined to the workspace. Activities may
// be anchored to a business, a job application, or a ticket; the ticket path
// in turn carries membership through its own column or its business. All four
// branches are OR-ed, mirroring TicketRepository.scoped.
func (r *ActivityRepository) scoped(workspaceID uuid.UUID) *gorm.DB {
	return r.db.Model(&models.Activity{}).
		Joins("LEFT JOIN businesses ON businesses.id = activities.business_id").
		Joins("LEFT JOIN job_applications ON job_applications.id = activities.job_application_id").
		Joins("LEFT JOIN tickets ON tickets.id = activities.ticket_id").
		Joins("LEFT JOIN businesses AS ticket_businesses ON ticket_businesses.id = tickets.business_id").
		Where("businesses.workspace_id = ? OR job_applications.workspace_id = ? OR tickets.workspace_id = ? OR ticket_businesses.workspace_id = ?",
			workspaceID, workspaceID, workspaceID, workspaceID)
}

// Create creates a new activity
func (r *ActivityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

// GetByIDInWorkspace retrieves an activity by ID, confined to the workspace,
// with its anchors loaded for in-memory guard checks.
func (r *ActivityRepository) GetByIDInWorkspace(id, workspaceID uuid.UUID) (*models.Activity, error) {
	var activity models.Activity
	err := r.scoped(workspaceID).
		Preload("Business").
		Preload("JobApplication").
		Preload("Ticket").
		Preload("Ticket.Business").
		Select("activities.*").
		Where("activities.id = ?", id).
		First(&activity).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetByBusinessID retrieves activities anchored to a business with pagination
func (r *ActivityRepository) GetByBusinessID(businessID uuid.UUID, limit, offset int) ([]models.Activity, int64, error) {
	var activities []models.Activity
	var total int64

	query := r.db.Model(&models.Activity{}).Where("business_id = ?", businessID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("date DESC").Find(&activities).Error
	if err != nil {
		return nil, 0, err
	}

	return activities, total, nil
}

// GetByTicketID retrieves activities anchored to a ticket with pagination
func (r *ActivityRepository) GetByTicketID(ticketID uuid.UUID, limit, offset int) ([]models.Activity, int64, error) {
	var activities []models.Activity
	var total int64

	query := r.db.Model(&models.Activity{}).Where("ticket_id = ?", ticketID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("date DESC").Find(&activities).Error
	if err != nil {
		return nil, 0, err
	}

	return activities, total, nil
}

// GetUpcoming retrieves incomplete activities dated at or after the given
// time, capped at limit. Ordering is date ascending with id ascending as the
// tie-break so pagination and snapshots stay deterministic.
func (r *ActivityRepository) GetUpcoming(workspaceID uuid.UUID, after time.Time, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.scoped(workspaceID).
		Select("activities.*").
		Where("activities.completed = ? AND activities.date >= ?", false, after).
		Order("activities.date ASC, activities.id ASC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// CountUpcoming counts incomplete activities dated at or after the given
// time. Same predicate as GetUpcoming, with no cap.
func (r *ActivityRepository) CountUpcoming(workspaceID uuid.UUID, after time.Time) (int64, error) {
	var total int64
	err := r.scoped(workspaceID).
		Where("activities.completed = ? AND activities.date >= ?", false, after).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Update updates an activity
func (r *ActivityRepository) Update(activity *models.Activity) error {
	return r.db.Save(activity).Error
}

// Delete deletes an activity
func (r *ActivityRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Activity{}, "id = ?", id).Error
}
