package repository

import (
	"crm-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketRepository handles database operations for tickets and their comments
type TicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// scoped returns a ticket query confined to the workspace. Membership is a
// logical OR across every anchor path: the ticket's own workspace column, its
// business, or its job application. Dropping any branch here reintroduces
// cross-tenant leakage.
func (r *TicketRepository) scoped(workspaceID uuid.UUID) *gorm.DB {
	return r.db.Model(&models.Ticket{}).
		Joins("LEFT JOIN businesses ON businesses.id = tickets.business_id").
		Joins("LEFT JOIN job_applications ON job_applications.id = tickets.job_application_id").
		Where("tickets.workspace_id = ? OR businesses.workspace_id = ? OR job_applications.workspace_id = ?",
			workspaceID, workspaceID, workspaceID)
}

// Create creates a new ticket
func (r *TicketRepository) Create(ticket *models.Ticket) error {
	return r.db.Create(ticket).Error
}

// GetByIDInWorkspace retrieves a ticket by ID, confined to the workspace.
// Out-of-tenant ids yield gorm.ErrRecordNotFound, never a permission error.
func (r *TicketRepository) GetByIDInWorkspace(id, workspaceID uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.scoped(workspaceID).
		Preload("Business").
		Preload("JobApplication").
		Select("tickets.*").
		Where("tickets.id = ?", id).
		First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GetByWorkspaceID retrieves tickets of a workspace with pagination
func (r *TicketRepository) GetByWorkspaceID(workspaceID uuid.UUID, limit, offset int) ([]models.Ticket, int64, error) {
	var tickets []models.Ticket
	var total int64

	if err := r.scoped(workspaceID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.scoped(workspaceID).
		Select("tickets.*").
		Limit(limit).Offset(offset).
		Order("tickets.created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

// GetOpenAssignedTo retrieves unresolved tickets assigned to a user, for the
// dashboard feed. Ordered by priority-independent recency; the feed builder
// does its own ranking.
func (r *TicketRepository) GetOpenAssignedTo(workspaceID, assigneeID uuid.UUID) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.scoped(workspaceID).
		Select("tickets.*").
		Where("tickets.assignee_id = ? AND tickets.status NOT IN ?", assigneeID,
			[]models.TicketStatus{models.TicketStatusResolved, models.TicketStatusClosed}).
		Order("tickets.created_at ASC, tickets.id ASC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// CountOpenAssignedTo counts unresolved tickets assigned to a user. Same
// predicate as GetOpenAssignedTo, without materializing the rows.
func (r *TicketRepository) CountOpenAssignedTo(workspaceID, assigneeID uuid.UUID) (int64, error) {
	var total int64
	err := r.scoped(workspaceID).
		Where("tickets.assignee_id = ? AND tickets.status NOT IN ?", assigneeID,
			[]models.TicketStatus{models.TicketStatusResolved, models.TicketStatusClosed}).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Update updates a ticket
func (r *TicketRepository) Update(ticket *models.Ticket) error {
	return r.db.Save(ticket).Error
}

// Delete deletes a ticket. Dependent comments are removed first in the same
// transaction; the comment rows have no cascade of their own.
func (r *TicketRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.TicketComment{}, "ticket_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Ticket{}, "id = ?", id).Error
	})
}

// CreateComment creates a new ticket comment
func (r *TicketRepository) CreateComment(comment *models.TicketComment) error {
	return r.db.Create(comment).Error
}

// GetCommentsByTicketID retrieves all comments of a ticket, oldest first
func (r *TicketRepository) GetCommentsByTicketID(ticketID uuid.UUID) ([]models.TicketComment, error) {
	var comments []models.TicketComment
	err := r.db.Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
