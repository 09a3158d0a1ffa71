package repository_test

import (
	"testing"
	"time"

	"crm-portal-backend/internal/database/models"
	"crm-portal-backend/internal/repository"
	"crm-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TicketRepositoryTestSuite exercises TicketRepository against Postgres,
// in particular the anchor-based workspace confinement
type TicketRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo          *repository.TicketRepository
	workspaceRepo *repository.WorkspaceRepository
	businessRepo  *repository.BusinessRepository
	jobAppRepo    *repository.JobApplicationRepository
	userRepo      *repository.UserRepository
}

// SetupSuite sets up the test suite
func (suite *TicketRepositoryTestSuite) SetupSuite() {
	suite.repo = repository.NewTicketRepository(suite.DB)
	suite.workspaceRepo = repository.NewWorkspaceRepository(suite.DB)
	suite.businessRepo = repository.NewBusinessRepository(suite.DB)
	suite.jobAppRepo = repository.NewJobApplicationRepository(suite.DB)
	suite.userRepo = repository.NewUserRepository(suite.DB)
}

func (suite *TicketRepositoryTestSuite) createWorkspace() *models.Workspace {
	ws := testutils.NewWorkspaceFactory().Create()
	require.NoError(suite.T(), suite.workspaceRepo.Create(ws))
	return ws
}

func (suite *TicketRepositoryTestSuite) createUser(workspaceID uuid.UUID) *models.User {
	user := testutils.NewUserFactory().WithWorkspace(workspaceID)
	require.NoError(suite.T(), suite.userRepo.Create(user))
	return user
}

// TestGetByIDInWorkspaceDirectAnchor tests lookup through the direct workspace column
func (suite *TicketRepositoryTestSuite) TestGetByIDInWorkspaceDirectAnchor() {
	ws := suite.createWorkspace()
	ticket := testutils.NewTicketFactory().WithWorkspace(ws.ID)
	require.NoError(suite.T(), suite.repo.Create(ticket))

	found, err := suite.repo.GetByIDInWorkspace(ticket.ID, ws.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), ticket.ID, found.ID)
}

// TestGetByIDInWorkspaceBusinessAnchor tests membership carried through the business
func (suite *TicketRepositoryTestSuite) TestGetByIDInWorkspaceBusinessAnchor() {
	ws := suite.createWorkspace()
	business := testutils.NewBusinessFactory().WithWorkspace(ws.ID)
	require.NoError(suite.T(), suite.businessRepo.Create(business))

	ticket := testutils.NewTicketFactory().WithBusiness(business.ID)
	require.NoError(suite.T(), suite.repo.Create(ticket))

	found, err := suite.repo.GetByIDInWorkspace(ticket.ID, ws.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), ticket.ID, found.ID)
	assert.Nil(suite.T(), found.WorkspaceID)
}

// TestGetByIDInWorkspaceJobApplicationAnchor tests membership through a job application
func (suite *TicketRepositoryTestSuite) TestGetByIDInWorkspaceJobApplicationAnchor() {
	ws := suite.createWorkspace()
	app := testutils.NewJobApplicationFactory().WithWorkspace(ws.ID)
	require.NoError(suite.T(), suite.jobAppRepo.Create(app))

	ticket := testutils.NewTicketFactory().WithJobApplication(app.ID)
	require.NoError(suite.T(), suite.repo.Create(ticket))

	found, err := suite.repo.GetByIDInWorkspace(ticket.ID, ws.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), ticket.ID, found.ID)
}

// TestGetByIDInWorkspaceForeignWorkspace tests that an out-of-tenant ticket is
// indistinguishable from a missing one
func (suite *TicketRepositoryTestSuite) TestGetByIDInWorkspaceForeignWorkspace() {
	wsA := suite.createWorkspace()
	wsB := suite.createWorkspace()
	business := testutils.NewBusinessFactory().WithWorkspace(wsA.ID)
	require.NoError(suite.T(), suite.businessRepo.Create(business))

	ticket := testutils.NewTicketFactory().WithBusiness(business.ID)
	require.NoError(suite.T(), suite.repo.Create(ticket))

	found, err := suite.repo.GetByIDInWorkspace(ticket.ID, wsB.ID)

	assert.Nil(suite.T(), found)
	assert.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

// TestGetByWorkspaceID tests that listing spans all anchor paths
func (suite *TicketRepositoryTestSuite) TestGetByWorkspaceID() {
	ws := suite.createWorkspace()
	business := testutils.NewBusinessFactory().WithWorkspace(ws.ID)
	require.NoError(suite.T(), suite.businessRepo.Create(business))

	factory := testutils.NewTicketFactory()
	require.NoError(suite.T(), suite.repo.Create(factory.WithWorkspace(ws.ID)))
	require.NoError(suite.T(), suite.repo.Create(factory.WithBusiness(business.ID)))

	tickets, total, err := suite.repo.GetByWorkspaceID(ws.ID, 20, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), total)
	assert.Len(suite.T(), tickets, 2)
}

// TestGetOpenAssignedTo tests the feed query, which must skip resolved and closed tickets
func (suite *TicketRepositoryTestSuite) TestGetOpenAssignedTo() {
	ws := suite.createWorkspace()
	user := suite.createUser(ws.ID)

	factory := testutils.NewTicketFactory()
	open := factory.WithAssignee(ws.ID, user.ID)
	require.NoError(suite.T(), suite.repo.Create(open))

	resolved := factory.WithAssignee(ws.ID, user.ID)
	resolved.ApplyStatus(models.TicketStatusResolved, time.Now())
	require.NoError(suite.T(), suite.repo.Create(resolved))

	unassigned := factory.WithWorkspace(ws.ID)
	require.NoError(suite.T(), suite.repo.Create(unassigned))

	tickets, err := suite.repo.GetOpenAssignedTo(ws.ID, user.ID)

	assert.NoError(suite.T(), err)
	require.Len(suite.T(), tickets, 1)
	assert.Equal(suite.T(), open.ID, tickets[0].ID)

	total, err := suite.repo.CountOpenAssignedTo(ws.ID, user.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), total)
}

// TestComments tests comment creation and oldest-first retrieval
func (suite *TicketRepositoryTestSuite) TestComments() {
	ws := suite.createWorkspace()
	user := suite.createUser(ws.ID)
	ticket := testutils.NewTicketFactory().WithWorkspace(ws.ID)
	require.NoError(suite.T(), suite.repo.Create(ticket))

	first := &models.TicketComment{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		TicketID:  ticket.ID,
		AuthorID:  user.ID,
		Body:      "First",
	}
	require.NoError(suite.T(), suite.repo.CreateComment(first))

	second := &models.TicketComment{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now().Add(time.Second)},
		TicketID:  ticket.ID,
		AuthorID:  user.ID,
		Body:      "Second",
	}
	require.NoError(suite.T(), suite.repo.CreateComment(second))

	comments, err := suite.repo.GetCommentsByTicketID(ticket.ID)

	assert.NoError(suite.T(), err)
	require.Len(suite.T(), comments, 2)
	assert.Equal(suite.T(), "First", comments[0].Body)
	assert.Equal(suite.T(), "Second", comments[1].Body)
}

// TestDeleteRemovesComments tests that deleting a ticket removes its comments too
func (suite *TicketRepositoryTestSuite) TestDeleteRemovesComments() {
	ws := suite.createWorkspace()
	user := suite.createUser(ws.ID)
	ticket := testutils.NewTicketFactory().WithWorkspace(ws.ID)
	require.NoError(suite.T(), suite.repo.Create(ticket))

	comment := &models.TicketComment{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		TicketID:  ticket.ID,
		AuthorID:  user.ID,
		Body:      "Gone soon",
	}
	require.NoError(suite.T(), suite.repo.CreateComment(comment))

	require.NoError(suite.T(), suite.repo.Delete(ticket.ID))

	comments, err := suite.repo.GetCommentsByTicketID(ticket.ID)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), comments)
}

// TestTicketRepositoryTestSuite runs the test suite
func TestTicketRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &TicketRepositoryTestSuite{BaseTestSuite: testutils.SetupTestSuite(t)})
}
