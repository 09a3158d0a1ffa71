package scope

import (
	"testing"

	"crm-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBelongs(t *testing.T) {
	workspaceID := uuid.New()
	otherID := uuid.New()

	t.Run("business carries its workspace directly", func(t *testing.T) {
		business := &models.Business{WorkspaceID: workspaceID}
		assert.True(t, Belongs(business, workspaceID))
		assert.False(t, Belongs(business, otherID))
	})

	t.Run("ticket with direct workspace column", func(t *testing.T) {
		ticket := &models.Ticket{WorkspaceID: &workspaceID}
		assert.True(t, Belongs(ticket, workspaceID))
		assert.False(t, Belongs(ticket, otherID))
	})

	t.Run("ticket inherits through business anchor", func(t *testing.T) {
		ticket := &models.Ticket{
			Business: &models.Business{WorkspaceID: workspaceID},
		}
		assert.True(t, Belongs(ticket, workspaceID))
		assert.False(t, Belongs(ticket, otherID))
	})

	t.Run("ticket inherits through job application anchor", func(t *testing.T) {
		ticket := &models.Ticket{
			JobApplication: &models.JobApplication{WorkspaceID: workspaceID},
		}
		assert.True(t, Belongs(ticket, workspaceID))
	})

	t.Run("membership is an OR across anchors", func(t *testing.T) {
		// Direct column points elsewhere, but the loaded business anchors
		// the ticket into the checked workspace. Any anchor suffices.
		ticket := &models.Ticket{
			WorkspaceID: &otherID,
			Business:    &models.Business{WorkspaceID: workspaceID},
		}
		assert.True(t, Belongs(ticket, workspaceID))
		assert.True(t, Belongs(ticket, otherID))
	})

	t.Run("ticket with no anchors belongs nowhere", func(t *testing.T) {
		ticket := &models.Ticket{}
		assert.False(t, Belongs(ticket, workspaceID))
	})

	t.Run("nil entity belongs nowhere", func(t *testing.T) {
		assert.False(t, Belongs(nil, workspaceID))
	})

	t.Run("activity inherits through ticket transitively", func(t *testing.T) {
		activity := &models.Activity{
			Ticket: &models.Ticket{
				Business: &models.Business{WorkspaceID: workspaceID},
			},
		}
		assert.True(t, Belongs(activity, workspaceID))
		assert.False(t, Belongs(activity, otherID))
	})
}

func TestScopeContains(t *testing.T) {
	workspaceID := uuid.New()
	sc := Scope{UserID: uuid.New(), WorkspaceID: workspaceID}

	business := &models.Business{WorkspaceID: workspaceID}
	assert.True(t, sc.Contains(business))

	foreign := &models.Business{WorkspaceID: uuid.New()}
	assert.False(t, sc.Contains(foreign))
}
